// Package scaffold lays down numbered chapter files for common story
// structures so a new draft starts with its beats already in place.
// Files that already exist are never touched.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

type Chapter struct {
	Title    string
	Guidance string
}

type Template struct {
	Name        string
	Description string
	Chapters    []Chapter
}

var templates = map[string]Template{
	"three-act": {
		Name:        "three-act",
		Description: "Classic setup, confrontation, resolution in eight beats.",
		Chapters: []Chapter{
			{"Act 1: The Setup", "Introduce the protagonist in their ordinary world and the flaw that holds them back."},
			{"Inciting Incident", "An outside event breaks the status quo. The problem cannot be ignored."},
			{"Plot Point 1", "The protagonist commits to facing the problem and leaves familiar ground."},
			{"Act 2: The Confrontation", "Rising action. Allies, enemies, and tests that demand new skills."},
			{"Midpoint", "A false victory or defeat shifts the stakes. No turning back."},
			{"Plot Point 2", "The lowest point. Hope runs out and something has to change inside."},
			{"Act 3: The Resolution", "The climax. The protagonist faces the antagonist with everything learned."},
			{"The End", "The aftermath. Show the new normal and how the protagonist changed."},
		},
	},
	"heros-journey": {
		Name:        "heros-journey",
		Description: "The monomyth in twelve stations.",
		Chapters: []Chapter{
			{"The Ordinary World", "Life before the journey. Show what is missing."},
			{"Call to Adventure", "A challenge or opportunity shakes things up."},
			{"Refusal of the Call", "Fear or duty makes the hero hesitate."},
			{"Meeting the Mentor", "Advice, tools, or confidence arrive from outside."},
			{"Crossing the Threshold", "The hero commits and enters a world with different rules."},
			{"Tests, Allies, Enemies", "The hero learns the new world the hard way."},
			{"Approach to the Cave", "Plans are made for the central danger."},
			{"The Ordeal", "A brush with death. The greatest fear, faced."},
			{"The Reward", "The prize is seized, but the danger is not over."},
			{"The Road Back", "Pursuit and urgency on the way home."},
			{"Resurrection", "A final test proves the lesson took."},
			{"Return with Elixir", "Home again, changed, carrying something that heals."},
		},
	},
	"save-the-cat": {
		Name:        "save-the-cat",
		Description: "The fifteen-beat sheet, catalyst to final image.",
		Chapters: []Chapter{
			{"Opening Image", "A snapshot of life before. Set the tone."},
			{"Theme Stated", "Someone names what the story is about. The hero does not hear it yet."},
			{"Setup", "Expand the hero's world and flaws."},
			{"Catalyst", "Life changes forever."},
			{"Debate", "The hero questions whether they can do this."},
			{"Break into Two", "A proactive choice starts the journey."},
			{"B Story", "The subplot that carries the theme."},
			{"Fun and Games", "The promise of the premise."},
			{"Midpoint", "Stakes rise sharply. The clock starts."},
			{"Bad Guys Close In", "Pressure mounts and the plan frays."},
			{"All Is Lost", "The lowest point. Something dies."},
			{"Dark Night of the Soul", "Hopelessness, then the germ of the answer."},
			{"Break into Three", "The real solution appears."},
			{"Finale", "The plan is executed and the old world ends."},
			{"Final Image", "Mirror the opening. Show the change."},
		},
	},
	"short-story": {
		Name:        "short-story",
		Description: "A single-conflict arc for short fiction.",
		Chapters: []Chapter{
			{"Hook", "Open inside the problem. No runway."},
			{"Complication", "The first attempt to fix it makes things worse."},
			{"Crisis", "Resources run out. The choice narrows to one."},
			{"Climax", "The decisive moment. Success or failure, on the page."},
			{"Resolution", "A short beat of aftermath. The new normal."},
		},
	},
}

var aliases = map[string]string{
	"3act":     "three-act",
	"standard": "three-act",
	"hero":     "heros-journey",
	"monomyth": "heros-journey",
	"cat":      "save-the-cat",
	"short":    "short-story",
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Names lists the available template names, sorted.
func Names() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup resolves a template by name or alias.
func Lookup(name string) (Template, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	tpl, ok := templates[key]
	return tpl, ok
}

// Init writes one numbered markdown file per chapter of the named
// template into dir, creating it if needed. Existing files are left
// alone and not reported. Returns the paths it created.
func Init(dir, name string) ([]string, error) {
	tpl, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown template %q (available: %s)", name, strings.Join(Names(), ", "))
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create project dir: %w", err)
	}

	created := make([]string, 0, len(tpl.Chapters))
	for i, ch := range tpl.Chapters {
		path := filepath.Join(dir, fmt.Sprintf("%02d-%s.md", i+1, slugify(ch.Title)))
		if _, err := os.Stat(path); err == nil {
			continue
		}
		content := fmt.Sprintf("# %s\n\n> %s\n", ch.Title, ch.Guidance)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return created, fmt.Errorf("write chapter %s: %w", path, err)
		}
		created = append(created, path)
	}

	return created, nil
}

func slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = strings.ReplaceAll(s, "'", "")
	s = slugStrip.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
