package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"

	"github.com/lox/plo-equity/equity"
	"github.com/lox/plo-equity/internal/scenario"
	"github.com/lox/plo-equity/poker"
)

var (
	// Style definitions
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	tieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	percentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

func pct(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

func displayBoard(w io.Writer, board []poker.Card) {
	if len(board) == 0 {
		return
	}
	fmt.Fprintf(w, "%s\n", headerStyle.Render("board"))
	fmt.Fprintf(w, "%s\n\n", poker.FormatCards(board))
}

func displayEquity(w io.Writer, hands [][]poker.Card, board []poker.Card, report *equity.Report) {
	displayBoard(w, board)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("equity"),
		headerStyle.Render("win"),
		headerStyle.Render("tie"))

	for i, result := range report.Players {
		equityStr := pct(result.EquityPct)
		if result.Method == equity.MethodMonteCarlo {
			lower, upper := result.ConfidenceInterval()
			equityStr += dimStyle.Render(fmt.Sprintf(" ±%.1f", (upper-lower)/2))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			handStyle.Render(poker.FormatCards(hands[i])),
			winStyle.Render(equityStr),
			winStyle.Render(pct(result.WinPct)),
			tieStyle.Render(pct(result.TiePct)))
	}

	tw.Flush()
}

func displayPossibilities(w io.Writer, hands [][]poker.Card, report *equity.Report) {
	fmt.Fprintf(w, "\n")

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s", categoryStyle.Render("hand"))
	for i := range report.Players {
		fmt.Fprintf(tw, "\t%s", handStyle.Render(poker.FormatCards(hands[i])))
	}
	fmt.Fprintf(tw, "\n")

	// Strongest first
	for t := poker.StraightFlush; ; t-- {
		seen := false
		for _, result := range report.Players {
			if result.HandTypes[t] > 0 {
				seen = true
				break
			}
		}
		if seen {
			fmt.Fprintf(tw, "%s", categoryStyle.Render(t.String()))
			for _, result := range report.Players {
				if result.HandTypes[t] > 0 {
					fmt.Fprintf(tw, "\t%s", percentStyle.Render(pct(result.HandTypePct(t))))
				} else {
					fmt.Fprintf(tw, "\t%s", percentStyle.Render("."))
				}
			}
			fmt.Fprintf(tw, "\n")
		}
		if t == poker.HighCard {
			break
		}
	}

	tw.Flush()
}

func displayFooter(w io.Writer, report *equity.Report) {
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "%d boards (%s) in %v\n", report.Boards, report.Method, report.Elapsed.Truncate(time.Millisecond))
}

func displayNextCards(w io.Writer, hands [][]poker.Card, board []poker.Card, ranked []equity.NextCardResult, player, top int) {
	displayBoard(w, board)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s", headerStyle.Render("card"))
	for i, hand := range hands {
		label := poker.FormatCards(hand)
		if i == player {
			label = "*" + label
		}
		fmt.Fprintf(tw, "\t%s", handStyle.Render(label))
	}
	fmt.Fprintf(tw, "\n")

	shown := ranked
	if top > 0 && top < len(ranked) {
		shown = ranked[:top]
	}
	for _, r := range shown {
		fmt.Fprintf(tw, "%s", categoryStyle.Render(r.Card.String()))
		for i, e := range r.Equities {
			style := percentStyle
			if i == player {
				style = winStyle
			}
			fmt.Fprintf(tw, "\t%s", style.Render(pct(e)))
		}
		fmt.Fprintf(tw, "\n")
	}

	tw.Flush()
	fmt.Fprintf(w, "\n%d of %d cards shown\n", len(shown), len(ranked))
}

func displayDeal(w io.Writer, deal *scenario.Deal, target scenario.Target) {
	fmt.Fprintf(w, "%s %s %s\n",
		headerStyle.Render("target"),
		target,
		dimStyle.Render(fmt.Sprintf("(%d attempts)", deal.Attempts)))

	var table strings.Builder
	tw := tabwriter.NewWriter(&table, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\n", headerStyle.Render("hand"), headerStyle.Render("best"))
	for _, hand := range deal.Hands {
		best := "."
		if eval, ok := poker.BestOmaha(hand, deal.Board); ok {
			best = eval.String()
		}
		fmt.Fprintf(tw, "%s\t%s\n", handStyle.Render(poker.FormatCards(hand)), categoryStyle.Render(best))
	}
	tw.Flush()

	draws := scenario.AnalyzeDraws(deal.Hero(), deal.Board, deal.Used())
	fmt.Fprintf(&table, "\n%s %s, %d outs", headerStyle.Render("hero"), draws.Type, len(draws.Outs))

	box := pterm.DefaultBox.
		WithTitle(poker.FormatCards(deal.Board)).
		WithTitleTopCenter().
		WithHorizontalPadding(2)
	fmt.Fprintf(w, "%s\n\n", box.Sprint(table.String()))
}
