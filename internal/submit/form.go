// Package submit implements the paper submission form state: static fields,
// dynamic author/tag lists with a one-entry floor, the file-extension
// allow-list, and validation gating the submit action. Submission is
// simulated; the form resets and nothing is appended to the paper fixture.
package submit

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Category is a submission subject area.
type Category struct {
	Value string
	Label string
}

// Categories lists the selectable subject areas in display order.
var Categories = []Category{
	{Value: "computer-science", Label: "Computer Science"},
	{Value: "mathematics", Label: "Mathematics"},
	{Value: "physics", Label: "Physics"},
	{Value: "biology", Label: "Biology"},
	{Value: "chemistry", Label: "Chemistry"},
	{Value: "medicine", Label: "Medicine"},
	{Value: "engineering", Label: "Engineering"},
	{Value: "economics", Label: "Economics"},
	{Value: "other", Label: "Other"},
}

// SubmitDelay is the simulated review-queue handoff time.
const SubmitDelay = 2 * time.Second

// allowedExtensions is the accepted upload formats: PDF, LaTeX, Markdown,
// and Word. Only the name is checked; file bytes are never read.
var allowedExtensions = map[string]bool{
	".pdf":      true,
	".tex":      true,
	".latex":    true,
	".md":       true,
	".markdown": true,
	".doc":      true,
	".docx":     true,
}

// AllowedFile reports whether the file name carries an accepted extension.
func AllowedFile(name string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(name))]
}

// Form holds the submission draft. The zero value is not usable; construct
// with NewForm so the dynamic lists start with their mandatory first entry.
type Form struct {
	Title       string
	Abstract    string
	Institution string
	DOI         string
	Category    string
	Authors     []string
	Tags        []string
	FileName    string
}

// NewForm returns an empty draft with one blank author and one blank tag.
func NewForm() Form {
	return Form{
		Category: Categories[0].Value,
		Authors:  []string{""},
		Tags:     []string{""},
	}
}

// Reset discards the draft, returning the form to its initial state.
func (f *Form) Reset() {
	*f = NewForm()
}

// AddAuthor appends a blank author entry.
func (f *Form) AddAuthor() {
	f.Authors = append(f.Authors, "")
}

// RemoveAuthor deletes the author at i. The last remaining entry cannot be
// removed; the call reports whether a removal happened.
func (f *Form) RemoveAuthor(i int) bool {
	if len(f.Authors) <= 1 || i < 0 || i >= len(f.Authors) {
		return false
	}
	f.Authors = append(f.Authors[:i], f.Authors[i+1:]...)
	return true
}

// SetAuthor replaces the author entry at i.
func (f *Form) SetAuthor(i int, v string) {
	if i >= 0 && i < len(f.Authors) {
		f.Authors[i] = v
	}
}

// AddTag appends a blank tag entry.
func (f *Form) AddTag() {
	f.Tags = append(f.Tags, "")
}

// RemoveTag deletes the tag at i, keeping at least one entry.
func (f *Form) RemoveTag(i int) bool {
	if len(f.Tags) <= 1 || i < 0 || i >= len(f.Tags) {
		return false
	}
	f.Tags = append(f.Tags[:i], f.Tags[i+1:]...)
	return true
}

// SetTag replaces the tag entry at i.
func (f *Form) SetTag(i int, v string) {
	if i >= 0 && i < len(f.Tags) {
		f.Tags[i] = v
	}
}

// SetFile records the attachment name after checking its extension.
func (f *Form) SetFile(name string) error {
	if !AllowedFile(name) {
		return fmt.Errorf("unsupported file type %q: accepted formats are PDF, LaTeX, Markdown, Word", filepath.Ext(name))
	}
	f.FileName = name
	return nil
}

// Validate reports why the draft is not submittable, or nil when it is.
// These are the same guard conditions the submit control is disabled on.
func (f Form) Validate() error {
	if strings.TrimSpace(f.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if strings.TrimSpace(f.Abstract) == "" {
		return fmt.Errorf("abstract is required")
	}
	hasAuthor := false
	for _, a := range f.Authors {
		if strings.TrimSpace(a) != "" {
			hasAuthor = true
			break
		}
	}
	if !hasAuthor {
		return fmt.Errorf("at least one author is required")
	}
	if f.FileName == "" {
		return fmt.Errorf("a paper file is required")
	}
	return nil
}

// CanSubmit reports whether the draft passes validation.
func (f Form) CanSubmit() bool {
	return f.Validate() == nil
}

// Confirmation is the message shown after the simulated submission resolves.
const Confirmation = "Paper submitted successfully! It will be reviewed by the community."
