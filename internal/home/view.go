// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package home

import (
	"github.com/taibuivan/showcase/pkg/slice"
	"github.com/taibuivan/showcase/pkg/slug"
)

// Hints shown in the related-projects panel.
const (
	HintNoSelection = "Pick a skill to see project matches."
	HintNoProjects  = "No projects mapped yet."
)

// # View Model

// View is the rendered homepage.
type View struct {
	Name     string `json:"name"`
	Tagline  string `json:"tagline"`
	Links    []Link `json:"links"`
	Location string `json:"location"`
	Email    string `json:"email"`
	MailTo   string `json:"mailto,omitempty"`

	Summary []string `json:"summary"`

	SkillGroups []SkillGroup `json:"skill_groups"`
	SkillHint   string       `json:"skill_hint"`

	Experience []RoleView `json:"experience"`
	Education  []RoleView `json:"education"`

	FooterNote string `json:"footer_note"`
}

// SkillGroup is one heading of skill pills.
type SkillGroup struct {
	Name   string      `json:"name"`
	Skills []SkillPill `json:"skills"`
}

// SkillPill is a focusable skill.
type SkillPill struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AriaLabel string `json:"aria_label"`
}

// RoleView is one experience or education article.
type RoleView struct {
	Heading string   `json:"heading"`
	Meta    string   `json:"meta"`
	Bullets []string `json:"bullets"`
}

// Related lists the projects mapped to one skill.
type Related struct {
	Skill    string        `json:"skill"`
	Hint     string        `json:"hint"`
	Projects []ProjectCard `json:"projects"`
	Empty    string        `json:"empty,omitempty"`
}

// ProjectCard is a related project.
type ProjectCard struct {
	Name    string `json:"name"`
	Summary string `json:"summary"`
	Links   []Link `json:"links"`
}

// # Rendering

// Render builds the homepage view.
func (d Document) Render() View {
	view := View{
		Name:        d.Basics.Name,
		Tagline:     d.Basics.Tagline,
		Links:       nonNil(d.Basics.Links),
		Location:    d.Basics.Location,
		Email:       d.Basics.Email,
		Summary:     nonNil(d.Summary),
		SkillGroups: GroupSkills(d.Skills),
		SkillHint:   HintNoSelection,
		Experience:  nonNil(slice.Map(d.Experience, roleView)),
		Education:   nonNil(slice.Map(d.Education, roleView)),
		FooterNote:  d.Footer.Note,
	}

	if d.Basics.Email != "" {
		view.MailTo = "mailto:" + d.Basics.Email
	}

	return view
}

// GroupSkills groups skills by their group name. Groups keep the order in
// which they first appear, and skills keep document order within a group.
func GroupSkills(skills []Skill) []SkillGroup {
	groups := []SkillGroup{}
	position := map[string]int{}
	ids := slug.NewUnique()

	for _, skill := range skills {
		name := skill.Group
		if name == "" {
			name = DefaultGroup
		}

		i, ok := position[name]
		if !ok {
			i = len(groups)
			position[name] = i
			groups = append(groups, SkillGroup{Name: name})
		}

		groups[i].Skills = append(groups[i].Skills, SkillPill{
			ID:        "skill_" + ids.From(skill.Name),
			Name:      skill.Name,
			AriaLabel: "Show projects related to " + skill.Name,
		})
	}

	return groups
}

// Related resolves the projects mapped to skill. Ids that match no project
// are skipped.
func (d Document) Related(skill Skill) Related {
	related := Related{
		Skill:    skill.Name,
		Hint:     "Projects tagged to: " + skill.Name,
		Projects: []ProjectCard{},
	}

	if len(skill.ProjectIDs) == 0 {
		related.Empty = HintNoProjects
		return related
	}

	index := d.projectIndex()
	for _, id := range skill.ProjectIDs {
		p, ok := index[id]
		if !ok {
			continue
		}
		related.Projects = append(related.Projects, ProjectCard{
			Name:    p.Name,
			Summary: p.Summary,
			Links:   nonNil(p.Links),
		})
	}

	return related
}

func roleView(r Role) RoleView {
	return RoleView{
		Heading: joinNonEmpty(" — ", r.Title, r.Org),
		Meta:    joinNonEmpty(" · ", r.Location, r.Dates),
		Bullets: nonNil(r.Bullets),
	}
}

func joinNonEmpty(sep string, parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += sep
		}
		out += p
	}
	return out
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
