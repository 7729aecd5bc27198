// Package pager renders item listings and shows long text through ov.
package pager

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/noborus/ov/oviewer"

	"lightbox/internal/domain"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Table renders items as a bordered table of index, album, file and alt text
func Table(items []domain.Item) string {
	rows := make([][]string, 0, len(items))
	for i, it := range items {
		rows = append(rows, []string{fmt.Sprint(i + 1), it.Album, it.Name(), it.AltText})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "ALBUM", "FILE", "ALT").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.String() + "\n"
}

// Write writes the table to w
func Write(w io.Writer, items []domain.Item) error {
	_, err := io.WriteString(w, Table(items))
	return err
}

// Page shows content in the ov pager until the user quits it
func Page(content string) error {
	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return fmt.Errorf("start pager: %w", err)
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
