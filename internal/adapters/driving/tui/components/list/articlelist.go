// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/custodia-labs/wxnews/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/wxnews/internal/core/domain"
)

// MaxDescriptionLines is how many wrapped lines of a description are shown.
const MaxDescriptionLines = 3

// ellipsis marks truncated text.
const ellipsis = "…"

// ArticleList displays headlines in a navigable list.
type ArticleList struct {
	articles []domain.Article
	selected int
	focused  bool
	styles   *styles.Styles
	width    int
	height   int
}

// NewArticleList creates a new article list component.
func NewArticleList(s *styles.Styles) *ArticleList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ArticleList{
		styles: s,
		width:  80,
		height: 20,
	}
}

// Init initialises the article list.
func (l *ArticleList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *ArticleList) Update(msg tea.Msg) (*ArticleList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the visible window of headlines.
func (l *ArticleList) View() string {
	if len(l.articles) == 0 {
		return l.styles.Muted.Render("No headlines")
	}

	start, end := l.window()
	items := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		items = append(items, l.renderArticle(i, &l.articles[i]))
	}

	view := strings.Join(items, "\n\n")
	if start > 0 || end < len(l.articles) {
		view += "\n" + l.styles.Muted.Render(fmt.Sprintf("%d-%d of %d", start+1, end, len(l.articles)))
	}
	return view
}

// itemHeight is the rendered height of one article plus its separator:
// title, description, image line and a blank line.
func (l *ArticleList) itemHeight() int {
	return 1 + MaxDescriptionLines + 1 + 1
}

// window returns the half-open index range of articles that fit.
func (l *ArticleList) window() (int, int) {
	visible := l.height / l.itemHeight()
	if visible < 1 {
		visible = 1
	}

	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := start + visible
	if end > len(l.articles) {
		end = len(l.articles)
	}
	return start, end
}

// renderArticle formats a single headline.
func (l *ArticleList) renderArticle(index int, a *domain.Article) string {
	textWidth := l.width - 4
	if textWidth < 20 {
		textWidth = 20
	}

	indicator := "  "
	if index == l.selected && l.focused {
		indicator = "> "
	}

	title := a.Title
	if title == "" {
		title = "(Untitled)"
	}
	title = ansi.Truncate(title, textWidth, ellipsis)

	var titleLine string
	if index == l.selected && l.focused {
		titleLine = indicator + l.styles.Selected.Render(title)
	} else {
		titleLine = indicator + l.styles.Subtitle.Render(title)
	}

	lines := []string{titleLine}
	for _, d := range TruncateLines(a.Description, textWidth, MaxDescriptionLines) {
		lines = append(lines, "    "+l.styles.Normal.Render(d))
	}
	lines = append(lines, "    "+l.styles.Muted.Render(ansi.Truncate("Image: "+a.Image(), textWidth, ellipsis)))

	return strings.Join(lines, "\n")
}

// TruncateLines wraps text to width and keeps at most maxLines lines,
// ending the last kept line with an ellipsis when text was dropped.
// Words longer than width are broken so no line exceeds width.
func TruncateLines(text string, width, maxLines int) []string {
	text = strings.TrimSpace(text)
	if text == "" || maxLines <= 0 {
		return nil
	}

	wrapped := strings.Split(ansi.Wrap(text, width, ""), "\n")
	if len(wrapped) <= maxLines {
		return wrapped
	}

	kept := wrapped[:maxLines]
	last := strings.TrimRight(kept[maxLines-1], " ")
	kept[maxLines-1] = ansi.Truncate(last, width-1, "") + ellipsis
	return kept
}

// SetArticles replaces the list contents.
// The selection is kept in range rather than reset.
func (l *ArticleList) SetArticles(articles []domain.Article) {
	l.articles = articles
	if l.selected >= len(articles) {
		l.selected = len(articles) - 1
	}
	if l.selected < 0 {
		l.selected = 0
	}
}

// Selected returns the index of the selected article.
func (l *ArticleList) Selected() int {
	return l.selected
}

// SetSelected sets the selected index.
func (l *ArticleList) SetSelected(index int) {
	if index >= 0 && index < len(l.articles) {
		l.selected = index
	}
}

// MoveUp moves selection up.
func (l *ArticleList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *ArticleList) MoveDown() {
	if l.selected < len(l.articles)-1 {
		l.selected++
	}
}

// SetFocused toggles the selection highlight.
func (l *ArticleList) SetFocused(focused bool) {
	l.focused = focused
}

// Focused reports whether the list has focus.
func (l *ArticleList) Focused() bool {
	return l.focused
}

// SetDimensions sets the component dimensions.
func (l *ArticleList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Width returns the current width.
func (l *ArticleList) Width() int {
	return l.width
}

// Height returns the current height.
func (l *ArticleList) Height() int {
	return l.height
}

// Count returns the number of articles.
func (l *ArticleList) Count() int {
	return len(l.articles)
}
