package main

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/hananasr/faqchat/internal/interface/tui"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "faqchat",
		Short:         "Multilingual FAQ answering over an embedded corpus",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCommand(), newChatCommand(), newAskCommand())
	return root
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			app, err := initializeApp()
			if err != nil {
				return fmt.Errorf("wire application: %w", err)
			}
			return app.Run(ctx)
		},
	}
}

func newChatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Open an interactive chat window in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := initializeChatService()
			if err != nil {
				return fmt.Errorf("wire chat service: %w", err)
			}
			_, err = tea.NewProgram(tui.New(svc), tea.WithAltScreen()).Run()
			return err
		},
	}
}

func newAskCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ask [question]",
		Short: "Answer a single question and exit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := initializeChatService()
			if err != nil {
				return fmt.Errorf("wire chat service: %w", err)
			}
			answer := svc.AnswerText(cmd.Context(), strings.Join(args, " "))
			fmt.Fprintln(cmd.OutOrStdout(), answer)
			return nil
		},
	}
}
