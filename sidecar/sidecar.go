// seehuhn.de/go/fontclass - classify fonts by visual weight, width and slant
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package sidecar reads the METADATA.pb files which accompany font families
// in the Google Fonts repository.
//
// The files are protocol buffer messages in text format.  Only the fields
// needed to identify fonts are declared here; all other fields are skipped
// when parsing.
package sidecar

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"

	"seehuhn.de/go/fontclass/gfn"
)

// FileName is the name of the metadata file inside a family directory.
const FileName = "METADATA.pb"

// Family is the information about a font family.
type Family struct {
	Name      string
	Designer  string
	License   string
	Category  []string
	DateAdded string
	Subsets   []string
	Fonts     []Font
}

// Font describes one font file of a family.
type Font struct {
	Name           string
	Style          string
	Weight         int
	Filename       string
	PostScriptName string
	FullName       string
	Copyright      string
}

// Lookup returns the font entry with the given file name.
func (f *Family) Lookup(filename string) (*Font, bool) {
	for i := range f.Fonts {
		if f.Fonts[i].Filename == filename {
			return &f.Fonts[i], true
		}
	}
	return nil, false
}

// GFN returns the identifier of the given font of the family.
func (f *Family) GFN(font *Font) gfn.GFN {
	return gfn.GFN{Family: f.Name, Style: font.Style, Weight: font.Weight}
}

// Read reads the metadata file in the given directory.
// If the directory has no metadata file, Read returns nil and no error.
func Read(dir string) (*Family, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes the text format representation of a FamilyProto message.
func Parse(data []byte) (*Family, error) {
	msg := dynamicpb.NewMessage(familyDesc)
	opt := prototext.UnmarshalOptions{DiscardUnknown: true}
	err := opt.Unmarshal(data, msg)
	if err != nil {
		return nil, fmt.Errorf("sidecar: %w", err)
	}

	fields := familyDesc.Fields()
	family := &Family{
		Name:      msg.Get(fields.ByName("name")).String(),
		Designer:  msg.Get(fields.ByName("designer")).String(),
		License:   msg.Get(fields.ByName("license")).String(),
		DateAdded: msg.Get(fields.ByName("date_added")).String(),
		Category:  stringList(msg.Get(fields.ByName("category")).List()),
		Subsets:   stringList(msg.Get(fields.ByName("subsets")).List()),
	}

	fontFields := fontDesc.Fields()
	fonts := msg.Get(fields.ByName("fonts")).List()
	for i := range fonts.Len() {
		m := fonts.Get(i).Message()
		family.Fonts = append(family.Fonts, Font{
			Name:           m.Get(fontFields.ByName("name")).String(),
			Style:          m.Get(fontFields.ByName("style")).String(),
			Weight:         int(m.Get(fontFields.ByName("weight")).Int()),
			Filename:       m.Get(fontFields.ByName("filename")).String(),
			PostScriptName: m.Get(fontFields.ByName("post_script_name")).String(),
			FullName:       m.Get(fontFields.ByName("full_name")).String(),
			Copyright:      m.Get(fontFields.ByName("copyright")).String(),
		})
	}
	return family, nil
}

func stringList(l protoreflect.List) []string {
	if l.Len() == 0 {
		return nil
	}
	res := make([]string, l.Len())
	for i := range res {
		res[i] = l.Get(i).String()
	}
	return res
}
