package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"agrow/config"
	kbRepoImp "agrow/pkg/kb/repositoryImp"
	kbSvcImp "agrow/pkg/kb/serviceImp"
)

func kbCommand(cfg *config.AppConfig) *cobra.Command {
	cmd := &cobra.Command{Use: "kb", Short: "Knowledge base tools"}

	var path string
	var strict bool
	check := &cobra.Command{
		Use:   "check",
		Short: "Load the reference data and report duplicate crop/disease keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				path = cfg.DiseasesPath
			}
			entries, err := kbRepoImp.NewFileLoader(path).Load()
			if err != nil {
				return err
			}
			kb := kbSvcImp.NewFromEntries(entries)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d entries\n", path, kb.Len())
			for _, d := range kb.Duplicates() {
				fmt.Fprintf(out, "duplicate: %s / %s (%d entries, first wins)\n", d.Crop, d.Name, d.Count)
			}
			if n := len(kb.Duplicates()); n > 0 && (strict || cfg.KBStrict) {
				return fmt.Errorf("%d duplicate keys", n)
			}
			return nil
		},
	}
	check.Flags().StringVar(&path, "path", "", "reference data file (default DISEASES_PATH)")
	check.Flags().BoolVar(&strict, "strict", false, "exit non-zero on duplicates")

	cmd.AddCommand(check)
	return cmd
}
