package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cardproc-cli",
		Short: "Cardproc CLI tool",
		Long:  `A command line interface for the credit card processing API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:3000", "Base URL of the cardproc API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 40*time.Second, "Request timeout")

	validateCmd := &cobra.Command{
		Use:   "validate <card-number>",
		Short: "Validate a card number",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			postJSON("/api/validate", map[string]any{"cardNumber": args[0]})
		},
	}

	var customBalance float64
	interestCmd := &cobra.Command{
		Use:   "interest <card-number>",
		Short: "Calculate monthly interest for a card",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			body := map[string]any{"cardNumber": args[0]}
			if cmd.Flags().Changed("balance") {
				body["customBalance"] = customBalance
			}
			postJSON("/api/calculate-interest", body)
		},
	}
	interestCmd.Flags().Float64Var(&customBalance, "balance", 0, "Custom balance overriding the stored one")

	var format string
	statementCmd := &cobra.Command{
		Use:   "statement <card-number>",
		Short: "Generate a statement for a card",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			postJSON("/api/generate-statement", map[string]any{"cardNumber": args[0], "format": format})
		},
	}
	statementCmd.Flags().StringVar(&format, "format", "json", "Statement format: json or text")

	cardsCmd := &cobra.Command{
		Use:   "cards",
		Short: "List all cards on file",
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/cards")
		},
	}

	var signup struct {
		fullName, email, phone, address string
		cardNumber, expiryDate, cvv     string
		propertyDetails                 string
	}
	signupCmd := &cobra.Command{
		Use:   "signup",
		Short: "Register a customer and put their card on file",
		Run: func(cmd *cobra.Command, args []string) {
			postJSON("/api/signup", map[string]any{
				"fullName":        signup.fullName,
				"email":           signup.email,
				"phone":           signup.phone,
				"address":         signup.address,
				"cardNumber":      signup.cardNumber,
				"expiryDate":      signup.expiryDate,
				"cvv":             signup.cvv,
				"propertyDetails": signup.propertyDetails,
			})
		},
	}
	signupCmd.Flags().StringVar(&signup.fullName, "name", "", "Full name")
	signupCmd.Flags().StringVar(&signup.email, "email", "", "Email address")
	signupCmd.Flags().StringVar(&signup.phone, "phone", "", "Phone number")
	signupCmd.Flags().StringVar(&signup.address, "address", "", "Postal address")
	signupCmd.Flags().StringVar(&signup.cardNumber, "card", "", "16-digit card number")
	signupCmd.Flags().StringVar(&signup.expiryDate, "expiry", "", "Expiry date MM/YY")
	signupCmd.Flags().StringVar(&signup.cvv, "cvv", "", "Card CVV")
	signupCmd.Flags().StringVar(&signup.propertyDetails, "property", "", "Property details")

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show batch program availability",
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/cobol-status")
		},
	}

	rootCmd.AddCommand(validateCmd, interestCmd, statementCmd, cardsCmd, signupCmd, statusCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func postJSON(path string, body map[string]any) {
	payload, err := json.Marshal(body)
	if err != nil {
		fmt.Printf("Failed to encode request: %v\n", err)
		os.Exit(1)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	printResponse(resp)
}

func getJSON(path string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	printResponse(resp)
}

func printResponse(resp *http.Response) {
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	// Statement text responses are printed verbatim.
	var pretty bytes.Buffer
	if json.Indent(&pretty, body, "", "  ") == nil {
		fmt.Println(pretty.String())
	} else {
		fmt.Print(string(body))
	}

	if resp.StatusCode >= http.StatusBadRequest {
		os.Exit(1)
	}
}
