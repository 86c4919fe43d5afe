// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestIdsStartAtOneAndAreUnique(t *testing.T) {
	if InvalidServiceId != 1 {
		t.Errorf("InvalidServiceId = %d, want 1", InvalidServiceId)
	}

	seen := make(map[Id]bool)
	for _, i := range Values() {
		if seen[i.Id()] {
			t.Errorf("duplicate ID: %d", i.Id())
		}
		seen[i.Id()] = true
	}
	if len(seen) != int(UnsupportedHostId) {
		t.Errorf("catalog has %d entries, want %d", len(seen), UnsupportedHostId)
	}
}

func TestValuesAreOrdered(t *testing.T) {
	values := Values()
	for i := 1; i < len(values); i++ {
		if values[i-1].Id() >= values[i].Id() {
			t.Fatalf("Values() not ordered at %d: %d >= %d", i, values[i-1].Id(), values[i].Id())
		}
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		id       Id
		contains string
	}{
		{InvalidServiceId, "Failed to start service"},
		{TunneldUnreachableId, "idevctl remote tunneld"},
		{UsbmuxUnavailableId, "usbmuxd"},
		{DeveloperModeDisabledId, "amfi enable-developer-mode"},
		{UnknownGroupId, "Unknown command group"},
		{GroupLoadFailedId, "could not be loaded"},
	}

	for _, tt := range tests {
		issue := Get(tt.id)
		if issue == nil {
			t.Fatalf("Get(%d) returned nil", tt.id)
		}
		if !strings.Contains(string(issue.MarkdownMsg()), tt.contains) {
			t.Errorf("issue %d Markdown does not contain %q", tt.id, tt.contains)
		}
	}

	if Get(Id(999)) != nil {
		t.Error("Get(999) should return nil")
	}
}

func TestLinksAreCopies(t *testing.T) {
	issue := Get(InvalidServiceId)
	links := issue.DocLinks()
	if len(links) == 0 {
		t.Fatal("invalid service issue should have doc links")
	}
	links[0] = "changed"
	if issue.DocLinks()[0] == "changed" {
		t.Error("DocLinks() returned the internal slice")
	}

	ext := issue.ExtLinks()
	if len(ext) == 0 {
		t.Fatal("invalid service issue should have external links")
	}
}

func TestMarkdownSeeAlso(t *testing.T) {
	withLinks := Get(InvalidServiceId).Markdown()
	if !strings.Contains(withLinks, "## See also") || !strings.Contains(withLinks, projectIssues) {
		t.Errorf("Markdown() with links = %q", withLinks)
	}

	withoutLinks := Get(PairingRequiredId).Markdown()
	if strings.Contains(withoutLinks, "See also") {
		t.Error("Markdown() without links should not add a See also section")
	}
}

func TestRenderUsesStyle(t *testing.T) {
	originalRender := render
	defer func() { render = originalRender }()

	var gotStyle, gotInput string
	render = func(in string, stylePath string) (string, error) {
		gotInput, gotStyle = in, stylePath
		return "rendered", nil
	}

	out, err := Get(TunneldUnreachableId).Render("dark")
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if out != "rendered" || gotStyle != "dark" {
		t.Errorf("Render() = %q with style %q", out, gotStyle)
	}
	if !strings.Contains(gotInput, "tunneld") {
		t.Errorf("render input = %q", gotInput)
	}
}

func TestAllIssuesRenderWithNoTTYStyle(t *testing.T) {
	for _, i := range Values() {
		out, err := i.Render("notty")
		if err != nil {
			t.Errorf("issue %d: Render(notty) error: %v", i.Id(), err)
			continue
		}
		if strings.TrimSpace(out) == "" {
			t.Errorf("issue %d rendered empty output", i.Id())
		}
	}
}
