package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// displayNames overrides title-casing where the conventional spelling
// differs.
var displayNames = map[string]string{
	"npm":                 "npm",
	"pypi":                "PyPI",
	"rubygems":            "RubyGems",
	"hex":                 "Hex",
	"crates":              "crates.io",
	"maven":               "Maven Central",
	"go":                  "Go Modules",
	"swift":               "Swift Package Manager",
	"cran":                "CRAN",
	"dockerhub":           "Docker Hub",
	"cpan":                "CPAN",
	"nuget":               "NuGet",
	"composer":            "Packagist",
	"nf-core-module":      "nf-core Modules",
	"nf-core-subworkflow": "nf-core Subworkflows",
}

var registriesCmd = &cobra.Command{
	Use:   "registries",
	Short: "List supported registries and their aliases",
	RunE: func(cmd *cobra.Command, _ []string) error {
		resolver, err := newResolver()
		if err != nil {
			return err
		}

		title := cases.Title(language.Und)
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "KEY\tNAME\tALIASES")
		for _, reg := range resolver.Registries() {
			name, ok := displayNames[reg.Key()]
			if !ok {
				name = title.String(reg.Key())
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", reg.Key(), name, strings.Join(reg.Aliases(), ", "))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(registriesCmd)
}
