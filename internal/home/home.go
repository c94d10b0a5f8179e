// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package home models the homepage document: basics, summary, skills with
their related projects, experience, education and the footer.

Unlike the index pages, the homepage document has a fixed shape and is
decoded into typed values.
*/
package home

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// DefaultGroup holds skills that name no group.
const DefaultGroup = "Other"

// # Document

// Document is the homepage content file.
type Document struct {
	Basics     Basics    `json:"basics"`
	Summary    []string  `json:"summary"`
	Skills     []Skill   `json:"skills"`
	Projects   []Project `json:"projects"`
	Experience []Role    `json:"experience"`
	Education  []Role    `json:"education"`
	Footer     Footer    `json:"footer"`
}

// Basics is the header block.
type Basics struct {
	Name     string `json:"name"`
	Tagline  string `json:"tagline"`
	Location string `json:"location"`
	Email    string `json:"email"`
	Links    []Link `json:"links"`
}

// Link is an external link.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Skill names the projects it was used in.
type Skill struct {
	Name       string `json:"name"`
	Group      string `json:"group"`
	ProjectIDs []ID   `json:"projectIds"`
}

// Project is a homepage project entry, referenced by [Skill.ProjectIDs].
type Project struct {
	ID      ID     `json:"id"`
	Name    string `json:"name"`
	Summary string `json:"summary"`
	Links   []Link `json:"links"`
}

// Role is one experience or education entry.
type Role struct {
	Title    string   `json:"title"`
	Org      string   `json:"org"`
	Location string   `json:"location"`
	Dates    string   `json:"dates"`
	Bullets  []string `json:"bullets"`
}

// Footer is the page footer.
type Footer struct {
	Note string `json:"note"`
}

// ID is a project identifier written either as a JSON string or a number.
type ID string

// UnmarshalJSON implements [json.Unmarshaler].
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("home: id must be a string or a number: %w", err)
	}
	if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
		*id = ID(strconv.FormatInt(i, 10))
		return nil
	}
	*id = ID(n.String())
	return nil
}

// Decode parses a homepage document.
func Decode(data []byte) (Document, error) {
	var document Document
	if err := json.Unmarshal(data, &document); err != nil {
		return Document{}, fmt.Errorf("home: decode document: %w", err)
	}
	return document, nil
}

// projectIndex maps project ids to projects. The first entry wins on
// duplicate ids.
func (d Document) projectIndex() map[ID]Project {
	index := make(map[ID]Project, len(d.Projects))
	for _, p := range d.Projects {
		if _, exists := index[p.ID]; !exists {
			index[p.ID] = p
		}
	}
	return index
}

// Skill returns the first skill called name.
func (d Document) Skill(name string) (Skill, bool) {
	for _, s := range d.Skills {
		if s.Name == name {
			return s, true
		}
	}
	return Skill{}, false
}
