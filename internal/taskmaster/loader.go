package taskmaster

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/tidwall/gjson"
)

// rawTask mirrors one task object in tasks.json. Subtasks nest recursively
// and ids are plain numbers at each level.
type rawTask struct {
	ID           json.Number `json:"id"`
	Title        string      `json:"title"`
	Status       string      `json:"status"`
	Dependencies []depRef    `json:"dependencies"`
	Subtasks     []rawTask   `json:"subtasks"`
}

// depRef accepts both numeric and string dependency values; Taskmaster
// writes numbers for sibling references and strings for dotted paths.
type depRef string

func (d *depRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*d = depRef(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("dependency must be a number or string: %s", data)
	}
	*d = depRef(n.String())
	return nil
}

// Load reads a Taskmaster tasks.json file and flattens the task list under
// tag into a Set. Nested subtasks get dotted ids ("3" parent, sub id 2 →
// "3.2"). A missing tag yields an empty set with a warning, matching how a
// chart for an empty tag should render (nothing), not an error.
func Load(path, tag string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tasks file: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("parse tasks file %s: invalid JSON", path)
	}

	node := gjson.GetBytes(data, escapePath(tag)+".tasks")
	if !node.Exists() || !node.IsArray() {
		log.Printf("warning: tag %q not found in %s, no tasks loaded", tag, path)
		return NewSet(nil), nil
	}

	var raw []rawTask
	if err := json.Unmarshal([]byte(node.Raw), &raw); err != nil {
		return nil, fmt.Errorf("parse tasks for tag %q: %w", tag, err)
	}

	var tasks []*Task
	flatten(raw, "", &tasks)
	return NewSet(tasks), nil
}

func flatten(raw []rawTask, parent ID, out *[]*Task) {
	for i := range raw {
		rt := &raw[i]
		id := ID(rt.ID.String())
		if parent != "" {
			id = ID(string(parent) + "." + rt.ID.String())
		}
		deps := make([]string, len(rt.Dependencies))
		for j, d := range rt.Dependencies {
			deps[j] = string(d)
		}
		*out = append(*out, &Task{
			ID:           id,
			Title:        rt.Title,
			Status:       ParseStatus(rt.Status),
			Dependencies: deps,
		})
		if len(rt.Subtasks) > 0 {
			flatten(rt.Subtasks, id, out)
		}
	}
}

// escapePath escapes gjson path metacharacters in a tag name.
func escapePath(tag string) string {
	r := strings.NewReplacer(".", `\.`, "*", `\*`, "?", `\?`)
	return r.Replace(tag)
}
