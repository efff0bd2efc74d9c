// gen-font-subset-from-text - build minimal fonts covering a known character set
// Copyright (C) 2026  The gen-font-subset-from-text Authors
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

// Package charset collects the set of characters a document collection
// uses, as input for minimal-font assembly.
package charset

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// Set is a set of Unicode code points.
type Set map[rune]struct{}

// New returns a set containing the characters of the given strings.
func New(ss ...string) Set {
	set := make(Set)
	for _, s := range ss {
		set.AddString(s)
	}
	return set
}

// Add inserts a single code point.
func (s Set) Add(r rune) {
	s[r] = struct{}{}
}

// AddString inserts every character of text.
func (s Set) AddString(text string) {
	for _, r := range text {
		s[r] = struct{}{}
	}
}

// Union inserts every character of other.
func (s Set) Union(other Set) {
	for r := range other {
		s[r] = struct{}{}
	}
}

// Contains reports whether the set contains r.
func (s Set) Contains(r rune) bool {
	_, ok := s[r]
	return ok
}

// Len returns the number of characters in the set.
func (s Set) Len() int {
	return len(s)
}

// Runes returns the characters in ascending code-point order.
func (s Set) Runes() []rune {
	rr := make([]rune, 0, len(s))
	for r := range s {
		rr = append(rr, r)
	}
	sort.Slice(rr, func(i, j int) bool { return rr[i] < rr[j] })
	return rr
}

// FromXML collects every character occurring in the text content of any
// element of an XML document.  Markup whitespace counts as text content,
// matching what the documents actually ask a renderer to display.
func FromXML(r io.Reader) (Set, error) {
	set := make(Set)
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return set, nil
		}
		if err != nil {
			return nil, err
		}
		if cd, ok := tok.(xml.CharData); ok {
			set.AddString(string(cd))
		}
	}
}

// FromXMLFile collects the characters of a single XML file.
func FromXMLFile(path string) (Set, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	set, err := FromXML(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// FromHTMLFile collects the characters of the text nodes of an HTML
// file.  Script and style contents are not renderer-visible text and are
// skipped.
func FromHTMLFile(path string) (Set, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	doc, err := html.Parse(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	set := make(Set)
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			set.AddString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return set, nil
}

// FromTextFile collects the characters of a plain-text file, one line at
// a time with surrounding whitespace stripped.  This is the format of
// "common characters" lists that supplement the characters extracted
// from documents.
func FromTextFile(path string) (Set, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	set := make(Set)
	scanner := bufio.NewScanner(fd)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			set.AddString(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// FromInputs gathers characters from directories (scanned recursively
// for .xml and .html files) and from explicitly listed files.  Entries
// that cannot be read or parsed are reported to warn and skipped, so one
// broken document does not abort a large scan.  A nil warn discards the
// warnings.
func FromInputs(dirs, files []string, warn io.Writer) Set {
	if warn == nil {
		warn = io.Discard
	}
	set := make(Set)

	for _, dir := range dirs {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			fmt.Fprintf(warn, "warning: %s is not a directory, skipping\n", dir)
			continue
		}
		filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			switch strings.ToLower(filepath.Ext(path)) {
			case ".xml", ".html", ".htm":
				addFile(set, path, warn)
			}
			return nil
		})
	}

	for _, path := range files {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			fmt.Fprintf(warn, "warning: %s is not a file, skipping\n", path)
			continue
		}
		addFile(set, path, warn)
	}

	return set
}

func addFile(set Set, path string, warn io.Writer) {
	var sub Set
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		sub, err = FromHTMLFile(path)
	default:
		sub, err = FromXMLFile(path)
	}
	if err != nil {
		fmt.Fprintf(warn, "warning: cannot parse %s: %v\n", path, err)
		return
	}
	set.Union(sub)
}
