package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mailgun "github.com/mailgun-sdk/client-go"
)

var (
	// send flags
	sendTo       []string
	sendFrom     string
	sendSubject  string
	sendText     string
	sendHTML     string
	sendTags     []string
	sendTestMode bool

	// list flags
	listLimit int
	listAll   bool

	// stats flags
	statsResolution string
)

func init() {
	sendCmd.Flags().StringArrayVar(&sendTo, "to", nil, "recipient address (repeatable)")
	sendCmd.Flags().StringVar(&sendFrom, "from", "", "sender address")
	sendCmd.Flags().StringVar(&sendSubject, "subject", "", "message subject")
	sendCmd.Flags().StringVar(&sendText, "text", "", "text body")
	sendCmd.Flags().StringVar(&sendHTML, "html", "", "HTML body")
	sendCmd.Flags().StringArrayVar(&sendTags, "tag", nil, "message tag (repeatable)")
	sendCmd.Flags().BoolVar(&sendTestMode, "test", false, "send in test mode (o:testmode=yes)")
	sendCmd.MarkFlagRequired("to")
	sendCmd.MarkFlagRequired("from")

	for _, cmd := range []*cobra.Command{bouncesCmd, complaintsCmd, eventsCmd, unsubscribesCmd, whitelistsCmd} {
		cmd.Flags().IntVar(&listLimit, "limit", 0, "maximum number of records per page")
		cmd.Flags().BoolVar(&listAll, "all", false, "follow pagination until exhausted")
	}

	statsCmd.Flags().StringVar(&statsResolution, "resolution", "", "aggregation resolution: hour, day or month")
}

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a message from the domain",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := mailgun.NewSendMessageParamList().From(sendFrom)
		for _, to := range sendTo {
			params = params.To(to)
		}
		if sendSubject != "" {
			params = params.Subject(sendSubject)
		}
		if sendText != "" {
			params = params.Text(sendText)
		}
		if sendHTML != "" {
			params = params.HTML(sendHTML)
		}
		for _, tag := range sendTags {
			params = params.OTag(tag)
		}
		if sendTestMode {
			params = params.OTestMode(true)
		}

		resp, err := client.SendMessage(cmd.Context(), params)
		if err != nil {
			return err
		}

		logger.Info().Str("id", resp.ID).Msg(resp.Message)
		return nil
	},
}

var bouncesCmd = &cobra.Command{
	Use:   "bounces",
	Short: "List bounce records for the domain",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := mailgun.NewGetBouncesParamList()
		if listLimit > 0 {
			params = params.Limit(listLimit)
		}

		resp, err := client.GetBounces(cmd.Context(), params)
		if err != nil {
			return err
		}
		return printPages(cmd.Context(), resp, func(r *mailgun.GetBouncesResponse) (int, string, any) {
			return len(r.Items), r.Paging.Next, r.Items
		})
	},
}

var complaintsCmd = &cobra.Command{
	Use:   "complaints",
	Short: "List complaint records for the domain",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := mailgun.NewGetComplaintsParamList()
		if listLimit > 0 {
			params = params.Limit(listLimit)
		}

		resp, err := client.GetComplaints(cmd.Context(), params)
		if err != nil {
			return err
		}
		return printPages(cmd.Context(), resp, func(r *mailgun.GetComplaintsResponse) (int, string, any) {
			return len(r.Items), r.Paging.Next, r.Items
		})
	},
}

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List delivery events for the domain",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := mailgun.NewGetEventsParamList()
		if listLimit > 0 {
			params = params.Limit(listLimit)
		}

		resp, err := client.GetEvents(cmd.Context(), params)
		if err != nil {
			return err
		}
		return printPages(cmd.Context(), resp, func(r *mailgun.GetEventsResponse) (int, string, any) {
			return len(r.Items), r.Paging.Next, r.Items
		})
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate event totals for the domain",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := mailgun.NewGetStatsParamList()
		if statsResolution != "" {
			params = params.Resolution(statsResolution)
		}

		resp, err := client.GetStats(cmd.Context(), params)
		if err != nil {
			return err
		}
		return printJSON(resp)
	},
}

var unsubscribesCmd = &cobra.Command{
	Use:   "unsubscribes",
	Short: "List unsubscribe records for the domain",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := mailgun.NewGetUnsubscribesParamList()
		if listLimit > 0 {
			params = params.Limit(listLimit)
		}

		resp, err := client.GetUnsubscribes(cmd.Context(), params)
		if err != nil {
			return err
		}
		return printPages(cmd.Context(), resp, func(r *mailgun.GetUnsubscribesResponse) (int, string, any) {
			return len(r.Items), r.Paging.Next, r.Items
		})
	},
}

var whitelistsCmd = &cobra.Command{
	Use:   "whitelists",
	Short: "List whitelist records for the domain",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := mailgun.NewGetWhitelistsParamList()
		if listLimit > 0 {
			params = params.Limit(listLimit)
		}

		resp, err := client.GetWhitelists(cmd.Context(), params)
		if err != nil {
			return err
		}
		return printPages(cmd.Context(), resp, func(r *mailgun.GetWhitelistsResponse) (int, string, any) {
			return len(r.Items), r.Paging.Next, r.Items
		})
	},
}

// printPages prints the first page and, with --all, keeps following the
// paging links until a page comes back empty.
func printPages[T any](ctx context.Context, first *T, inspect func(*T) (count int, next string, items any)) error {
	page := first
	for pageNo := 1; ; pageNo++ {
		count, next, items := inspect(page)
		if count == 0 && pageNo > 1 {
			return nil
		}

		if err := printJSON(items); err != nil {
			return err
		}
		if !listAll || next == "" {
			return nil
		}
		logger.Debug().Int("page", pageNo+1).Str("url", next).Msg("following pagination")

		var err error
		page, err = mailgun.Call[T](ctx, client, next)
		if err != nil {
			return err
		}
	}
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, string(data))
	return nil
}
