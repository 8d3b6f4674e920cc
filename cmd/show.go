package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/riftdata/internal/card"
	"github.com/arcanaland/riftdata/internal/report"
)

var showCmd = &cobra.Command{
	Use:   "show [name_or_id]",
	Short: "Display a card from the card data file",
	Long: `Show displays a card from the rebuilt card data file.
Cards are matched by collector number or by name, ignoring case.

Examples:
  riftdata show OGN-035
  riftdata show "vayne, hunter"
  riftdata show --data ./expert.json "Seal of Rage"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := dataPath(cmd)
		if err != nil {
			return err
		}

		records, err := report.ReadFile(path)
		if err != nil {
			return err
		}

		c, err := findRecord(records, args[0])
		if err != nil {
			return err
		}

		displayCard(cmd.OutOrStdout(), c, terminalWidth())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().StringP("data", "d", "", "Path to the card data JSON (defaults to the rebuild output)")
}

// findRecord finds a card by exact collector number, then by name ignoring case
func findRecord(records []*card.Record, query string) (*card.Record, error) {
	query = strings.TrimSpace(query)
	for _, r := range records {
		if r.ID == query {
			return r, nil
		}
	}
	for _, r := range records {
		if strings.EqualFold(r.Name, query) {
			return r, nil
		}
	}
	return nil, fmt.Errorf("card not found: %s", query)
}

// terminalWidth returns the width of stdout, or 80 when it is not a terminal
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	// Ensure width is reasonable
	if width < 10 {
		width = 40
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}

// displayCard prints the card fields with colored labels
func displayCard(w io.Writer, c *card.Record, width int) {
	label := colorize.New(colorize.FgCyan)
	value := colorize.New(colorize.FgHiWhite)

	var lines []string
	field := func(name, v string) {
		lines = append(lines, label.Sprintf("%-9s", name+":")+value.Sprint(v))
	}

	field("Card", c.Name)
	field("ID", c.ID)
	field("Type", c.TypeLine)
	field("Domain", c.Domain)
	if c.Rarity != "" {
		field("Rarity", c.Rarity)
	}
	if c.Supertypes != "" {
		field("Super", c.Supertypes)
	}
	field("Stats", fmt.Sprintf("energy %s · might %s · power %s",
		c.Stats.Energy, c.Stats.Might, c.Stats.Power))
	if len(c.RulesText.Keywords) > 0 {
		field("Keywords", strings.Join(c.RulesText.Keywords, ", "))
	}
	if len(c.Tags) > 0 {
		field("Tags", strings.Join(c.Tags, ", "))
	}
	if c.ImageURL != "" {
		field("Image", c.ImageURL)
	}

	if c.RulesText.Raw != "" {
		lines = append(lines, "", label.Sprint("Rules text:"))
		// Leave a small margin for the left padding
		lines = append(lines, wrapText(c.RulesText.Raw, width-4)...)
	}

	fmt.Fprintln(w)
	for _, line := range lines {
		fmt.Fprintf(w, "  %s\n", line)
	}
	fmt.Fprintln(w)
}
