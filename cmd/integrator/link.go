package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shivanshkc/integrator/pkg/link"
	"github.com/shivanshkc/integrator/pkg/provider"
)

func newLinkCmd() *cobra.Command {
	var params struct {
		provider, name, redirect, basePath string
	}

	cmd := &cobra.Command{
		Use:   "link",
		Short: "Print the URL that starts an integration flow",
		Example: `  integrator link --provider google --name user_info --redirect "https://app.com/settings#integrations" \
    --base-path https://integrator.app.com`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			built, err := link.Build(link.Params{
				Provider: provider.ID(params.provider),
				Name:     params.name,
				Redirect: params.redirect,
				BasePath: params.basePath,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), built)
			return err
		},
	}

	cmd.Flags().StringVar(&params.provider, "provider", "", "provider id, for example google")
	cmd.Flags().StringVar(&params.name, "name", "", "integration name")
	cmd.Flags().StringVar(&params.redirect, "redirect", "", "where the browser ends once the flow completes")
	cmd.Flags().StringVar(&params.basePath, "base-path", "", "origin or path prefix of the integration routes")
	return cmd
}
