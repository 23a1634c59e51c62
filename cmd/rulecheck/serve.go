package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fieldrules/pkg/api"
	"github.com/dmitrymomot/fieldrules/pkg/httpserver"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the validation HTTP API",
		Long: `Serve exposes the loaded rulesets over HTTP until interrupted:

  POST /v1/validate/{ruleset}
  GET  /v1/rulesets
  GET  /health
  GET  /metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, err := a.loadRules()
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
			handler := api.New(set,
				api.WithLogger(a.log),
				api.WithMetrics(api.NewMetrics(reg)),
			)

			httpCfg := a.cfg.HTTP
			if addr != "" {
				httpCfg.Addr = addr
			}
			srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(a.log))
			return srv.Run(cmd.Context(), handler.Router())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (env HTTP_ADDR)")
	return cmd
}
