package github

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bkyoung/test-reporter/internal/domain"
)

// commentToolName identifies this tool inside the comment marker. It is
// part of the identifier and must stay stable across releases, or prior
// comments become unfindable.
const commentToolName = "test-reporter"

// BuildCommentIdentifier derives the deterministic marker embedded at
// the end of every managed comment. It is a pure function of the check
// names (order matters): the same list always yields the same string,
// which is the sole mechanism for locating a prior comment to update.
// The marker is an HTML comment, so it renders invisibly in markdown.
func BuildCommentIdentifier(checkNames []string) string {
	names, _ := json.Marshal(checkNames)
	return fmt.Sprintf("<!-- Summary comment for %s by %s -->", names, commentToolName)
}

// IsManagedComment reports whether the comment body belongs to this tool
// for the given identifier. The identifier is always the body's literal
// suffix; only trailing whitespace GitHub may append is tolerated.
func IsManagedComment(body, identifier string) bool {
	return strings.HasSuffix(strings.TrimRight(body, " \t\r\n"), identifier)
}

// RenderComment renders the summary tables into the comment body. The
// detail table is included when it exists, the flaky table only when it
// has rows beyond its header, and the identifier is always the trailing
// line.
func RenderComment(overview, details, flaky domain.Table, identifier string) string {
	var sb strings.Builder

	sb.WriteString(RenderTable(overview))

	if len(details) > 0 {
		sb.WriteString("\n")
		sb.WriteString(RenderTable(details))
	}
	if flaky.HasData() {
		sb.WriteString("\n")
		sb.WriteString(RenderTable(flaky))
	}

	sb.WriteString("\n")
	sb.WriteString(identifier)
	return sb.String()
}

// RenderTable renders a header-plus-rows table as a GitHub-flavored
// markdown pipe table. Cell content is escaped so pipes and newlines in
// test names cannot break the layout.
func RenderTable(t domain.Table) string {
	if len(t) == 0 {
		return ""
	}

	var sb strings.Builder
	writeRow(&sb, t[0])

	sb.WriteString("|")
	for range t[0] {
		sb.WriteString("---|")
	}
	sb.WriteString("\n")

	for _, row := range t[1:] {
		writeRow(&sb, row)
	}
	return sb.String()
}

func writeRow(sb *strings.Builder, row []string) {
	sb.WriteString("|")
	for _, cell := range row {
		sb.WriteString(" ")
		sb.WriteString(escapeCell(cell))
		sb.WriteString(" |")
	}
	sb.WriteString("\n")
}

func escapeCell(cell string) string {
	cell = strings.ReplaceAll(cell, "|", "\\|")
	cell = strings.ReplaceAll(cell, "\r\n", " ")
	cell = strings.ReplaceAll(cell, "\n", " ")
	return cell
}
