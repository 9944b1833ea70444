package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ledger-cli",
		Short: "Ledger CLI tool",
		Long:  `A command line interface for interacting with the ledger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the ledger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Ledger commands
	ledgerCmd := &cobra.Command{
		Use:   "ledger",
		Short: "Ledger operations",
	}
	ledgerCmd.AddCommand(consistencyCmd(), balancesCmd())
	rootCmd.AddCommand(ledgerCmd)

	// Receivable commands
	receivablesCmd := &cobra.Command{
		Use:   "receivables",
		Short: "Receivable sub-ledger operations",
	}
	receivablesCmd.AddCommand(statisticsCmd(), counterpartyBalanceCmd())
	rootCmd.AddCommand(receivablesCmd)

	// Rate commands
	rateCmd := &cobra.Command{
		Use:   "rate",
		Short: "Exchange rate operations",
	}
	rateCmd.AddCommand(currentRateCmd(), setRateCmd())
	rootCmd.AddCommand(rateCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func consistencyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "consistency",
		Short: "Check ledger consistency",
		Run: func(cmd *cobra.Command, args []string) {
			result := getJSON("/api/v1/ledger/consistency")
			if consistent, ok := result["consistent"].(bool); ok && consistent {
				fmt.Println("Consistency check PASSED")
				return
			}
			fmt.Println("Consistency check FAILED: debits and credits do not match")
			os.Exit(1)
		},
	}
}

func balancesCmd() *cobra.Command {
	var asOf string
	cmd := &cobra.Command{
		Use:   "balances",
		Short: "Show every account's balance",
		Run: func(cmd *cobra.Command, args []string) {
			path := "/api/v1/balances"
			if asOf != "" {
				path += "?as_of=" + asOf
			}
			balances := getJSONList(path)
			fmt.Printf("%-10s %-30s %12s\n", "CODE", "ACCOUNT", "BALANCE")
			for _, b := range balances {
				code, _ := b["account_code"].(string)
				name, _ := b["account_name"].(string)
				fmt.Printf("%-10s %-30s %12v\n", code, truncate(name, 30), b["balance"])
			}
		},
	}
	cmd.Flags().StringVar(&asOf, "as-of", "", "Cutoff date (YYYY-MM-DD)")
	return cmd
}

func statisticsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "statistics",
		Short: "Summarise counterparty positions",
		Run: func(cmd *cobra.Command, args []string) {
			printJSON(getJSON("/api/v1/receivables/statistics"))
		},
	}
}

func counterpartyBalanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance <counterparty>",
		Short: "Show a counterparty's net position",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			printJSON(getJSON("/api/v1/receivables/" + args[0] + "/balance"))
		},
	}
}

func currentRateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show the current exchange rate",
		Run: func(cmd *cobra.Command, args []string) {
			printJSON(getJSON("/api/v1/rates/current"))
		},
	}
}

func setRateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <value>",
		Short: "Set a manual exchange rate",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			client := &http.Client{Timeout: timeout}
			body := strings.NewReader(`{"value":"` + args[0] + `"}`)
			req, err := http.NewRequest(http.MethodPut, baseURL+"/api/v1/rates/current", body)
			if err != nil {
				fmt.Printf("Error building request: %v\n", err)
				os.Exit(1)
			}
			req.Header.Set("Content-Type", "application/json")

			resp, err := client.Do(req)
			if err != nil {
				fmt.Printf("Error making request: %v\n", err)
				os.Exit(1)
			}
			defer resp.Body.Close()

			raw, _ := io.ReadAll(resp.Body)
			if resp.StatusCode != http.StatusOK {
				fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(raw))
				os.Exit(1)
			}

			var result map[string]any
			if err := json.Unmarshal(raw, &result); err != nil {
				fmt.Printf("Failed to parse response: %v\n", err)
				os.Exit(1)
			}
			printJSON(result)
		},
	}
}

func getJSON(path string) map[string]any {
	var result map[string]any
	fetchInto(path, &result)
	return result
}

func getJSONList(path string) []map[string]any {
	var result []map[string]any
	fetchInto(path, &result)
	return result
}

func fetchInto(path string, out any) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	if err := json.Unmarshal(body, out); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Failed to format output: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
