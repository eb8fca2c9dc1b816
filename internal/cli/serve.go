package cli

import (
	"errors"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/webpage/internal/output"
	"github.com/wesleyorama2/webpage/internal/page"
	"github.com/wesleyorama2/webpage/internal/server"
)

// listenAddress is replaced in tests; the binary always binds server.Address
var listenAddress = server.Address

// started is called once the listener is bound
var started = func(*server.Server) {}

var plainCmd = newServeCmd(page.VariantPlain, "Serve a plain heading")

var styledCmd = newServeCmd(page.VariantStyled, "Serve a heading with an inline stylesheet")

func newServeCmd(variant page.Variant, short string) *cobra.Command {
	return &cobra.Command{
		Use:   string(variant),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd, variant)
		},
	}
}

// serve binds the listener and blocks answering requests
func serve(cmd *cobra.Command, variant page.Variant) error {
	noColor, _ := cmd.Flags().GetBool("no-color")
	console := output.NewConsole(cmd.OutOrStdout(), cmd.ErrOrStderr(), noColor)

	body, err := page.Body(variant)
	if err != nil {
		return err
	}

	srv, err := server.Listen(listenAddress, body, server.WithAccessLog(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}
	started(srv)

	console.ServerRunning(server.URL)

	if err := srv.Serve(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
