package application

import (
	"fmt"
	"html"
	"strconv"
	"strings"
	"time"

	"fcclubs/internal/models"
)

type Markup int

const (
	MarkupHTML Markup = iota
	MarkupPlain
	MarkupMarkdown
)

type ReportInput struct {
	Club    models.ClubRef
	Matches []models.MatchResult
	Stats   *models.ClubSeasonStats
	Ratings models.RatingContext
}

// Renderer formats normalized matches. Compact mode is used when Stats is nil,
// tabular mode otherwise.
type Renderer struct {
	loc        *time.Location
	maxMatches int
}

func NewRenderer(loc *time.Location, maxMatches int) *Renderer {
	if loc == nil {
		loc = time.UTC
	}
	return &Renderer{loc: loc, maxMatches: maxMatches}
}

func (r *Renderer) Render(in ReportInput, markup Markup) string {
	if in.Stats == nil {
		return r.renderCompact(in, markup)
	}
	return r.renderTabular(in, markup)
}

// streakLine reverses the first five outcomes. Unknown outcomes have no glyph.
func streakLine(matches []models.MatchResult) string {
	head := matches
	if len(head) > streakLength {
		head = head[:streakLength]
	}

	glyphs := make([]string, 0, len(head))
	for i := len(head) - 1; i >= 0; i-- {
		switch head[i].Outcome {
		case models.OutcomeWin:
			glyphs = append(glyphs, glyphWin)
		case models.OutcomeLoss:
			glyphs = append(glyphs, glyphLoss)
		case models.OutcomeDraw:
			glyphs = append(glyphs, glyphDraw)
		}
	}
	return strings.Join(glyphs, " ")
}

func (r *Renderer) visibleMatches(matches []models.MatchResult) []models.MatchResult {
	if r.maxMatches > 0 && len(matches) > r.maxMatches {
		return matches[:r.maxMatches]
	}
	return matches
}

func (r *Renderer) renderCompact(in ReportInput, markup Markup) string {
	var blocks []string
	if streak := streakLine(in.Matches); streak != "" {
		blocks = append(blocks, streak)
	}

	for _, m := range r.visibleMatches(in.Matches) {
		blocks = append(blocks, r.compactBlock(m, in.Club, markup))
	}

	return strings.Join(blocks, blockSeparator)
}

func (r *Renderer) compactBlock(m models.MatchResult, club models.ClubRef, markup Markup) string {
	timeLine := fmt.Sprintf("%s - (%s)", m.RecencyLabel, m.PlayedAt.In(r.loc).Format(timestampLayout))
	if m.Degraded() {
		return degradedLine + "\n" + timeLine
	}

	primary := primarySide(m, club)
	t1, t2 := m.Teams[0], m.Teams[1]
	score := fmt.Sprintf("%d:%d", t1.Goals, t2.Goals)

	name1, width1 := displayName(t1.DisplayName, primary == 0, markup)
	name2, _ := displayName(t2.DisplayName, primary == 1, markup)

	lines := []string{name1 + " " + score + " " + name2}

	// Column where the second team's name starts, in visible characters.
	secondStart := width1 + 1 + visibleWidth(score) + 1

	if len(m.StandoutPlayers) == 0 {
		lines = append(lines, noStandoutLine)
	}
	for _, sp := range m.StandoutPlayers {
		indent := 0
		if standoutSide(m, sp, primary) == 1 {
			indent = secondStart
		}
		lines = append(lines, strings.Repeat(" ", indent)+escape(sp.PlayerName, markup)+" - "+formatPlayerRating(sp.Rating))
	}

	lines = append(lines, timeLine)
	if m.DisconnectWinner != nil && *m.DisconnectWinner {
		lines = append(lines, disconnectLine)
	}

	return strings.Join(lines, "\n")
}

func (r *Renderer) renderTabular(in ReportInput, markup Markup) string {
	rating := "N/A"
	if in.Stats.SkillRating.Available {
		rating = strconv.Itoa(in.Stats.SkillRating.Value)
	}

	header := strings.TrimLeft(streakLine(in.Matches)+"  "+rating, " ")
	blocks := []string{
		header + "\n" + fmt.Sprintf("%d/%d/%d", in.Stats.Wins, in.Stats.Ties, in.Stats.Losses),
	}

	for _, m := range r.visibleMatches(in.Matches) {
		blocks = append(blocks, tabularBlock(m, in))
	}

	out := strings.Join(blocks, blockSeparator)
	switch markup {
	case MarkupHTML:
		return "<pre>" + html.EscapeString(out) + "</pre>"
	case MarkupMarkdown:
		return "```\n" + out + "\n```"
	}
	return out
}

func tabularBlock(m models.MatchResult, in ReportInput) string {
	if m.Degraded() {
		return degradedLine + "\n" + m.RecencyLabel
	}

	left, right := 0, 1
	if primarySide(m, in.Club) == 1 {
		left, right = 1, 0
	}
	lt, rt := m.Teams[left], m.Teams[right]

	leftRating := ""
	if in.Stats.SkillRating.Available {
		leftRating = strconv.Itoa(in.Stats.SkillRating.Value)
	}
	if lt.ClubID != in.Club.ClubID {
		leftRating = lookupRating(in.Ratings, lt.ClubID)
	}
	rightRating := lookupRating(in.Ratings, rt.ClubID)

	primary := primarySide(m, in.Club)
	var leftStandouts, rightStandouts []string
	for _, sp := range m.StandoutPlayers {
		cell := sp.PlayerName + " " + formatPlayerRating(sp.Rating)
		if standoutSide(m, sp, primary) == left {
			leftStandouts = append(leftStandouts, cell)
		} else {
			rightStandouts = append(rightStandouts, cell)
		}
	}

	rows := []string{
		tabularRow(lt.DisplayName, fmt.Sprintf("%d:%d", lt.Goals, rt.Goals), rt.DisplayName),
		tabularRow(leftRating, "", rightRating),
		tabularRow(strings.Join(leftStandouts, ", "), "", strings.Join(rightStandouts, ", ")),
		m.RecencyLabel,
	}
	if m.DisconnectWinner != nil && *m.DisconnectWinner {
		rows = append(rows, disconnectLine)
	}

	return strings.Join(rows, "\n")
}

// tabularRow lays out three fixed-width cells, wrapping long ones onto extra lines.
func tabularRow(cells ...string) string {
	wrapped := make([][]string, len(cells))
	height := 0
	for i, c := range cells {
		wrapped[i] = wrapCell(c, tabularCellWidth)
		height = max(height, len(wrapped[i]))
	}

	lines := make([]string, 0, height)
	for ln := 0; ln < height; ln++ {
		var b strings.Builder
		for i, w := range wrapped {
			part := ""
			if ln < len(w) {
				part = w[ln]
			}
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(padRight(part, tabularCellWidth))
		}
		lines = append(lines, strings.TrimRight(b.String(), " "))
	}
	return strings.Join(lines, "\n")
}

func lookupRating(rc models.RatingContext, clubID string) string {
	if v, ok := rc.Lookup(clubID); ok {
		return strconv.Itoa(v)
	}
	return ""
}

// primarySide returns the index of the primary club among the two teams,
// matching by id first and by case-insensitive name second, or -1.
func primarySide(m models.MatchResult, club models.ClubRef) int {
	if idx := m.TeamIndex(club.ClubID); idx >= 0 && idx < 2 {
		return idx
	}
	for i := 0; i < 2 && i < len(m.Teams); i++ {
		if strings.EqualFold(m.Teams[i].DisplayName, club.Name) {
			return i
		}
	}
	return -1
}

// standoutSide places a standout under the team they were listed for. When the
// listing key is not a club id it is compared to display names, and the primary
// side wins a tie between equally named teams.
func standoutSide(m models.MatchResult, sp models.StandoutPlayer, primary int) int {
	for i := 0; i < 2; i++ {
		if m.Teams[i].ClubID == sp.TeamClubID {
			return i
		}
	}
	if primary >= 0 && strings.EqualFold(m.Teams[primary].DisplayName, sp.TeamClubID) {
		return primary
	}
	if strings.EqualFold(m.Teams[0].DisplayName, sp.TeamClubID) {
		return 0
	}
	return 1
}

func displayName(name string, primary bool, markup Markup) (string, int) {
	width := visibleWidth(name)
	if !primary {
		return escape(name, markup), width
	}
	switch markup {
	case MarkupHTML:
		return "<b><u>" + html.EscapeString(name) + "</u></b>", width
	case MarkupMarkdown:
		return "**__" + markdownEscaper.Replace(name) + "__**", width
	}
	return "*" + name + "*", width + 2
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "~", `\~`, "`", "\\`", "|", `\|`, ">", `\>`,
)

func escape(s string, markup Markup) string {
	switch markup {
	case MarkupHTML:
		return html.EscapeString(s)
	case MarkupMarkdown:
		return markdownEscaper.Replace(s)
	}
	return s
}
