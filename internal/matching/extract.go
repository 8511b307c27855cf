package matching

import (
	"fmt"

	"github.com/shubhamdevjs/BeatATS/internal/parsing"
	"github.com/shubhamdevjs/BeatATS/internal/types"
)

// Resume section names used in mention provenance.
const (
	SectionExperience = "experience"
	SectionProjects   = "projects"
	SectionSkills     = "skills"
)

// ExtractSkillEvidence scans the resume for every JD skill (and its
// synonyms) and returns the gathered evidence keyed by canonical skill.
// Experience and project bullets get computed evidence scores; project
// stack entries get a fixed medium score; skills-list entries get a
// fixed low score that only counts when nothing better was found.
func ExtractSkillEvidence(resume *types.Resume, jdSkills []string) map[string]*types.SkillEvidence {
	found := make(map[string]*types.SkillEvidence)

	// Search for each JD skill under all of its known variants, so a
	// JD asking for "kubernetes" still matches a resume saying "k8s".
	wanted := make(map[string]bool, len(jdSkills))
	var searchTerms []string
	seenTerm := make(map[string]bool)
	for _, skill := range jdSkills {
		wanted[parsing.NormalizeSkill(skill)] = true
		for _, v := range parsing.Variants(skill) {
			if !seenTerm[v] {
				seenTerm[v] = true
				searchTerms = append(searchTerms, v)
			}
		}
	}

	record := func(term, section, context string, evidence float64) {
		canon := parsing.NormalizeSkill(term)
		ev, ok := found[canon]
		if !ok {
			ev = &types.SkillEvidence{Original: term}
			found[canon] = ev
		}
		ev.Mentions = append(ev.Mentions, types.Mention{
			Skill:    canon,
			Section:  section,
			Evidence: evidence,
			Context:  context,
		})
		if evidence > ev.BestEvidence {
			ev.BestEvidence = evidence
		}
		if section == SectionExperience {
			ev.InExperience = true
		}
	}

	// 1. Experience bullets: strongest provenance, computed evidence.
	for _, role := range resume.Sections.Experience {
		for _, bullet := range role.Bullets {
			for _, term := range searchTerms {
				for _, m := range FindMentions(term, bullet) {
					record(term, SectionExperience, m.Context, ScoreEvidence(m.Context))
				}
			}
		}
	}

	// 2. Projects: stack entries at a fixed medium score, bullets with
	// computed evidence.
	for _, project := range resume.Sections.Projects {
		for _, tech := range project.Stack {
			if wanted[parsing.NormalizeSkill(tech)] {
				record(tech, SectionProjects, fmt.Sprintf("Project: %s", project.Name), EvidenceStackMention)
			}
		}
		for _, bullet := range project.Bullets {
			for _, term := range searchTerms {
				for _, m := range FindMentions(term, bullet) {
					record(term, SectionProjects, m.Context, ScoreEvidence(m.Context))
				}
			}
		}
	}

	// 3. Flat skills list: weakest provenance, fixed low score. The
	// low score only becomes best evidence when the skill appeared
	// nowhere else.
	for _, category := range resume.Sections.Skills.Categories {
		for _, item := range category.Items {
			canon := parsing.NormalizeSkill(item)
			if !wanted[canon] {
				continue
			}
			categoryName := category.Name
			if categoryName == "" {
				categoryName = "General"
			}
			ev, ok := found[canon]
			if !ok {
				ev = &types.SkillEvidence{Original: item}
				found[canon] = ev
			}
			ev.Mentions = append(ev.Mentions, types.Mention{
				Skill:    canon,
				Section:  SectionSkills,
				Evidence: EvidenceSkillsList,
				Context:  fmt.Sprintf("Skills section: %s", categoryName),
			})
			if ev.BestEvidence == 0 {
				ev.BestEvidence = EvidenceSkillsList
			}
		}
	}

	return found
}
