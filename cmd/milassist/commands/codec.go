package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/teranos/milassist/command"
	"github.com/teranos/milassist/display"
	"github.com/teranos/milassist/errors"
	"github.com/teranos/milassist/milsymbol"
	"github.com/teranos/milassist/sidc"
)

var renderer sidc.Renderer = milsymbol.Renderer{}

func newEncodeCmd() *cobra.Command {
	var d command.SymbolData
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Build a SIDC from unit attributes",
		Long: `Build a 20 digit SIDC. Labels are matched loosely ("assumed friend",
"Task Force"); unknown values fall back to their defaults. --category is
resolved against the symbol set catalog unless --icon gives the code.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rec := d.Record()
			code := sidc.Generate(rec)
			valid := sidc.Validate(renderer, code)
			md := sidc.Metadata(renderer, code)

			if display.ShouldOutputJSON(cmd) {
				return display.OutputJSON(cmd, map[string]interface{}{
					"sidc":     code,
					"record":   rec,
					"valid":    valid,
					"metadata": md,
				})
			}
			return display.KeyValues(cmd.OutOrStdout(), [][2]string{
				{"SIDC", code},
				{"Main icon", code[10:16] + " " + sidc.FunctionIDName(rec.SymbolSet, code[10:16])},
				{"Valid", strconv.FormatBool(valid)},
				{"Affiliation", md.Affiliation},
				{"Dimension", md.Dimension},
				{"Echelon", md.Echelon},
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&d.Context, "context", "", "Reality, Exercise or Simulation")
	f.StringVar(&d.StandardIdentity, "identity", "", "Standard identity (Friend, Hostile, ...)")
	f.StringVar(&d.SymbolSet, "set", "", "Symbol set (default Land Unit)")
	f.StringVar(&d.Status, "status", "", "Status (Present, Planned, ...)")
	f.StringVar(&d.HQTFD, "hqtfd", "", "Headquarters / task force / dummy")
	f.StringVar(&d.Echelon, "echelon", "", "Echelon (Team ... Command)")
	f.StringVar(&d.SymbolCategory, "category", "", "Unit category, resolved to a main icon")
	f.StringVar(&d.MainIconID, "icon", "", "Six digit main icon code")
	f.StringVar(&d.Modifier1, "mod1", "", "Sector 1 modifier, name or two digit code")
	f.StringVar(&d.Modifier2, "mod2", "", "Sector 2 modifier, name or two digit code")
	return cmd
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <sidc>",
		Short: "Explain a SIDC column by column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, err := sidc.Describe(args[0])
			if err != nil {
				return err
			}
			if display.ShouldOutputJSON(cmd) {
				return display.OutputJSON(cmd, desc)
			}
			return display.Table(cmd.OutOrStdout(), []string{"Column", "Code", "Meaning"}, [][]string{
				{"Version", desc.SIDC[0:2], "APP-6D"},
				{"Context", desc.SIDC[2:3], desc.Context},
				{"Standard identity", desc.SIDC[3:4], desc.StandardIdentity},
				{"Symbol set", desc.SIDC[4:6], desc.SymbolSet},
				{"Status", desc.SIDC[6:7], desc.Status},
				{"HQ / TF / dummy", desc.SIDC[7:8], desc.HQTFD},
				{"Echelon", desc.SIDC[8:10], desc.Echelon},
				{"Main icon", desc.MainIconID, desc.MainIcon},
				{"Modifier 1", desc.Modifier1Code, desc.Modifier1},
				{"Modifier 2", desc.Modifier2Code, desc.Modifier2},
			})
		},
	}
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <sidc>",
		Short: "Check that a SIDC renders to a known icon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			md := sidc.Metadata(renderer, args[0])
			if display.ShouldOutputJSON(cmd) {
				if err := display.OutputJSON(cmd, md); err != nil {
					return err
				}
			} else if md.Valid {
				display.Success(cmd.OutOrStdout(), args[0]+" is a drawable symbol ("+md.Affiliation+" "+md.Dimension+")")
			} else {
				msg := args[0] + " does not resolve to a known icon"
				if md.Error != "" {
					msg += ": " + md.Error
				}
				display.Failure(cmd.OutOrStdout(), msg)
			}
			if !md.Valid {
				return errors.Wrapf(errors.ErrInvalidSIDC, "%s", args[0])
			}
			return nil
		},
	}
}

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <symbol-set> <category>",
		Short: "Find the main icon code for a unit category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, ok := sidc.FindFunctionID(args[0], args[1])
			if !ok {
				return errors.NewNotFoundError("no main icon in %q matches %q", args[0], args[1])
			}
			name := sidc.FunctionIDName(args[0], id)
			if display.ShouldOutputJSON(cmd) {
				return display.OutputJSON(cmd, map[string]string{"functionId": id, "name": name})
			}
			return display.KeyValues(cmd.OutOrStdout(), [][2]string{{"Function ID", id}, {"Name", name}})
		},
	}
}

func newNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "name <symbol-set> <function-id>",
		Short: "Name a main icon code",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := sidc.FunctionIDName(args[0], args[1])
			if display.ShouldOutputJSON(cmd) {
				return display.OutputJSON(cmd, map[string]string{"functionId": args[1], "name": name})
			}
			_, err := cmd.OutOrStdout().Write([]byte(name + "\n"))
			return err
		},
	}
}

func newSymbolSetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "symbolsets [name]",
		Short: "List symbol sets, or the catalog of one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return listSymbolSets(cmd)
			}
			c, ok := sidc.CatalogFor(args[0])
			if !ok {
				return errors.NewNotFoundError("unknown symbol set %q", args[0])
			}
			opts := c.Options()
			if display.ShouldOutputJSON(cmd) {
				return display.OutputJSON(cmd, opts)
			}
			var rows [][]string
			for _, o := range opts.MainIcons {
				rows = append(rows, []string{"main icon", o.Code, o.Name})
			}
			for _, o := range opts.Modifier1 {
				rows = append(rows, []string{"modifier 1", o.Code, o.Name})
			}
			for _, o := range opts.Modifier2 {
				rows = append(rows, []string{"modifier 2", o.Code, o.Name})
			}
			return display.Table(cmd.OutOrStdout(), []string{"Kind", "Code", "Name"}, rows)
		},
	}
}

func listSymbolSets(cmd *cobra.Command) error {
	sets := sidc.SymbolSets()
	if display.ShouldOutputJSON(cmd) {
		out := make([]sidc.Option, len(sets))
		for i, s := range sets {
			out[i] = sidc.Option{Name: s.String(), Code: s.Code()}
		}
		return display.OutputJSON(cmd, out)
	}
	rows := make([][]string, len(sets))
	for i, s := range sets {
		icons := "-"
		if c, _ := sidc.CatalogFor(s.Code()); c != nil && c.HasMainIcons() {
			icons = strconv.Itoa(len(c.MainIcons()))
		}
		rows[i] = []string{s.Code(), s.String(), icons}
	}
	return display.Table(cmd.OutOrStdout(), []string{"Code", "Symbol set", "Main icons"}, rows)
}
