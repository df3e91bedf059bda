package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"acpc-thunderdome/server/acpc"
	"acpc-thunderdome/server/agent"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse match state lines from a file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, err := cmd.Flags().GetBool("json")
		if err != nil {
			return err
		}
		in, err := openInput(args)
		if err != nil {
			return err
		}
		defer in.Close()

		res, err := scanStates(in)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if asJSON {
			err = writeJSONLines(out, res)
		} else {
			err = renderTable(out, res)
		}
		if err != nil {
			return err
		}
		for _, r := range res {
			pterm.Debug.Printfln("line %d: %s", r.Line, r.Raw)
			if r.Err != nil {
				pterm.Error.Printfln("line %d: %v", r.Line, r.Err)
			}
		}
		if bad := countBad(res); bad > 0 {
			return fmt.Errorf("%d of %d lines malformed", bad, len(res))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().Bool("json", false, "print one JSON observation per line")
}

func writeJSONLines(w io.Writer, res []lineResult) error {
	enc := json.NewEncoder(w)
	for _, r := range res {
		if r.Err != nil {
			continue
		}
		payload := map[string]any{
			"line":        r.Line,
			"state":       r.State,
			"observation": agent.BuildObservation(r.State),
		}
		if err := enc.Encode(payload); err != nil {
			return err
		}
	}
	return nil
}

func renderTable(w io.Writer, res []lineResult) error {
	data := pterm.TableData{{"Line", "Hand", "Seat", "Street", "Betting", "Hole", "Board"}}
	for _, r := range res {
		if r.Err != nil {
			continue
		}
		m := r.State
		data = append(data, []string{
			fmt.Sprint(r.Line),
			fmt.Sprint(m.HandNumber()),
			fmt.Sprint(m.Position()),
			acpc.StreetName(m.Round()),
			bettingString(m),
			cardGroups(m.HoleCards(), " | "),
			cardGroups(m.BoardCards()[1:], " / "),
		})
	}
	s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}

func bettingString(m *acpc.MatchState) string {
	rounds := m.BettingActions()
	parts := make([]string, len(rounds))
	for i, round := range rounds {
		var b strings.Builder
		for _, a := range round {
			b.WriteString(a.String())
		}
		parts[i] = b.String()
	}
	return strings.Join(parts, "/")
}

func cardGroups(nested [][]acpc.Card, sep string) string {
	parts := make([]string, len(nested))
	for i, cards := range nested {
		strs := make([]string, len(cards))
		for j, c := range cards {
			strs[j] = string(c)
		}
		parts[i] = strings.Join(strs, " ")
	}
	return strings.Join(parts, sep)
}
