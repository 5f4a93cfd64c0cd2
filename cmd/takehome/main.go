package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/takehome/takehome/internal/calculation"
	"github.com/takehome/takehome/internal/config"
	"github.com/takehome/takehome/internal/domain"
	"github.com/takehome/takehome/internal/mortgage"
	"github.com/takehome/takehome/internal/output"
	"github.com/takehome/takehome/internal/regimes"
	"github.com/takehome/takehome/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "takehome",
	Short: "Statutory tax and take-home pay calculator",
	Long:  "Computes take-home pay under progressive bracket regimes (US federal + California, CN individual income tax) plus mortgage amortization schedules",
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "takehome %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

// decimalFlag parses a --flag value as a decimal, treating an empty
// string as zero.
func decimalFlag(cmd *cobra.Command, name string) (decimal.Decimal, error) {
	raw, _ := cmd.Flags().GetString(name)
	if strings.TrimSpace(raw) == "" {
		return decimal.Zero, nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid --%s value %q: %w", name, raw, err)
	}
	return v, nil
}

func renderResult(result *domain.TaxComputationResult, format, currency string) error {
	formatter := output.GetFormatterByName(format)
	if formatter == nil {
		return fmt.Errorf("unsupported format: %s", format)
	}
	if cf, ok := formatter.(*output.ConsoleFormatter); ok {
		cf.Currency = currency
	}
	data, err := formatter.Format(result)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

var usCmd = &cobra.Command{
	Use:   "us",
	Short: "US federal + California take-home pay (2024)",
	Run: func(cmd *cobra.Command, args []string) {
		income, err := decimalFlag(cmd, "income")
		if err != nil {
			log.Fatal(err)
		}
		gains, err := decimalFlag(cmd, "capital-gains")
		if err != nil {
			log.Fatal(err)
		}
		contribution, err := decimalFlag(cmd, "contribution-401k")
		if err != nil {
			log.Fatal(err)
		}
		maximize, _ := cmd.Flags().GetBool("max-401k")
		if maximize && contribution.IsZero() {
			contribution = decimal.Min(income, decimal.NewFromInt(regimes.Max401kContribution))
		}

		deductions := domain.DeductionSet{}
		if contribution.IsPositive() {
			deductions[regimes.Deduction401k] = contribution
		}

		statusFlag, _ := cmd.Flags().GetString("status")
		statuses := domain.AllFilingStatuses
		if statusFlag != "" {
			fs, err := domain.ParseFilingStatus(statusFlag)
			if err != nil {
				log.Fatal(err)
			}
			statuses = []domain.FilingStatus{fs}
		}

		engine := calculation.NewEngine(regimes.USCombined2024()...)
		format, _ := cmd.Flags().GetString("format")
		for _, fs := range statuses {
			result, err := engine.Compute(domain.TaxInput{
				GrossIncome:  income,
				CapitalGains: gains,
				FilingStatus: fs,
				Deductions:   deductions,
			})
			if err != nil {
				log.Fatal(err)
			}
			if err := renderResult(result, format, "$"); err != nil {
				log.Fatal(err)
			}
			fmt.Println()
		}
	},
}

var cnCmd = &cobra.Command{
	Use:   "cn",
	Short: "CN individual income tax on a monthly salary (2024)",
	Run: func(cmd *cobra.Command, args []string) {
		salary, err := decimalFlag(cmd, "salary")
		if err != nil {
			log.Fatal(err)
		}

		deductions := domain.DeductionSet{}
		for flag, name := range map[string]string{
			"rent":           regimes.DeductionHousingRent,
			"housing-loan":   regimes.DeductionHousingLoan,
			"children-edu":   regimes.DeductionChildrenEdu,
			"continuing-edu": regimes.DeductionContinuingEdu,
			"elderly-care":   regimes.DeductionElderlyCare,
			"medical":        regimes.DeductionMedical,
		} {
			amount, err := decimalFlag(cmd, flag)
			if err != nil {
				log.Fatal(err)
			}
			if amount.IsPositive() {
				deductions[name] = amount
			}
		}

		city, _ := cmd.Flags().GetString("city")
		engine := calculation.NewEngine(regimes.ChinaIIT2024ForCity(city))

		result, err := engine.Compute(domain.TaxInput{
			GrossIncome:  salary,
			FilingStatus: domain.FilingSingle,
			Deductions:   deductions,
		})
		if err != nil {
			log.Fatal(err)
		}
		format, _ := cmd.Flags().GetString("format")
		if err := renderResult(result, format, "¥"); err != nil {
			log.Fatal(err)
		}
	},
}

var computeCmd = &cobra.Command{
	Use:   "compute [profiles-file]",
	Short: "Compute against a custom YAML profile set",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		profiles, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		income, err := decimalFlag(cmd, "income")
		if err != nil {
			log.Fatal(err)
		}
		gains, err := decimalFlag(cmd, "capital-gains")
		if err != nil {
			log.Fatal(err)
		}
		statusFlag, _ := cmd.Flags().GetString("status")
		fs, err := domain.ParseFilingStatus(statusFlag)
		if err != nil {
			log.Fatal(err)
		}

		deductions := domain.DeductionSet{}
		pairs, _ := cmd.Flags().GetStringArray("deduction")
		for _, pair := range pairs {
			name, raw, found := strings.Cut(pair, "=")
			if !found {
				log.Fatalf("invalid --deduction %q, want name=amount", pair)
			}
			amount, err := decimal.NewFromString(raw)
			if err != nil {
				log.Fatalf("invalid --deduction amount %q: %v", raw, err)
			}
			deductions[name] = amount
		}

		engine := calculation.NewEngine(profiles...)
		result, err := engine.Compute(domain.TaxInput{
			GrossIncome:  income,
			CapitalGains: gains,
			FilingStatus: fs,
			Deductions:   deductions,
		})
		if err != nil {
			log.Fatal(err)
		}
		format, _ := cmd.Flags().GetString("format")
		currency, _ := cmd.Flags().GetString("currency")
		if err := renderResult(result, format, currency); err != nil {
			log.Fatal(err)
		}
	},
}

var mortgageCmd = &cobra.Command{
	Use:   "mortgage",
	Short: "Mortgage amortization schedules",
	Long:  "Amortizes a plain loan (--principal/--rate) or a combined CN purchase (--house-price with a housing-fund split)",
	Run: func(cmd *cobra.Command, args []string) {
		years, _ := cmd.Flags().GetInt("years")
		methodFlag, _ := cmd.Flags().GetString("method")
		method := mortgage.Method(methodFlag)
		currency, _ := cmd.Flags().GetString("currency")

		housePrice, err := decimalFlag(cmd, "house-price")
		if err != nil {
			log.Fatal(err)
		}

		if housePrice.IsPositive() {
			downPayment, err := decimalFlag(cmd, "down-payment")
			if err != nil {
				log.Fatal(err)
			}
			fundDeposit, err := decimalFlag(cmd, "fund-deposit")
			if err != nil {
				log.Fatal(err)
			}
			combined, err := mortgage.NewCombinedLoan(housePrice, downPayment, fundDeposit,
				years, mortgage.DefaultCommercialRate, mortgage.DefaultFundRate)
			if err != nil {
				log.Fatal(err)
			}
			fund, commercial, err := combined.Amortize(method)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf("Total loan: %s (fund %s, commercial %s)\n\n",
				output.FormatCurrency(currency, combined.TotalPrincipal()),
				output.FormatCurrency(currency, combined.Fund.Principal),
				output.FormatCurrency(currency, combined.Commercial.Principal))
			if combined.Fund.Principal.IsPositive() {
				fmt.Print(output.FormatSchedule("Housing-fund loan", fund, currency))
				fmt.Println()
			}
			if combined.Commercial.Principal.IsPositive() {
				fmt.Print(output.FormatSchedule("Commercial loan", commercial, currency))
			}
			return
		}

		principal, err := decimalFlag(cmd, "principal")
		if err != nil {
			log.Fatal(err)
		}
		rate, err := decimalFlag(cmd, "rate")
		if err != nil {
			log.Fatal(err)
		}
		loan := mortgage.Loan{Principal: principal, AnnualRate: rate, Months: years * 12}
		schedule, err := loan.Amortize(method)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(output.FormatSchedule("Repayment schedule", schedule, currency))
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive calculator",
	Run: func(cmd *cobra.Command, args []string) {
		p := tea.NewProgram(tui.NewModel(), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	usCmd.Flags().String("income", "", "Annual wage income")
	usCmd.Flags().String("capital-gains", "", "Long-term capital gains")
	usCmd.Flags().String("contribution-401k", "", "Explicit 401(k) contribution")
	usCmd.Flags().Bool("max-401k", false, "Contribute the 401(k) annual maximum")
	usCmd.Flags().String("status", "", "Filing status (single, married); both when omitted")
	usCmd.Flags().String("format", "console", "Output format (console, json, csv)")

	cnCmd.Flags().String("salary", "", "Monthly gross salary")
	cnCmd.Flags().String("city", "北京", "City, selects the rent deduction tier")
	cnCmd.Flags().String("rent", "", "Monthly housing rent deduction")
	cnCmd.Flags().String("housing-loan", "", "Monthly housing loan interest deduction")
	cnCmd.Flags().String("children-edu", "", "Monthly children education deduction")
	cnCmd.Flags().String("continuing-edu", "", "Monthly continuing education deduction")
	cnCmd.Flags().String("elderly-care", "", "Monthly elderly care deduction")
	cnCmd.Flags().String("medical", "", "Major medical expense deduction")
	cnCmd.Flags().String("format", "console", "Output format (console, json, csv)")

	computeCmd.Flags().String("income", "", "Gross income per the profile period")
	computeCmd.Flags().String("capital-gains", "", "Capital gains")
	computeCmd.Flags().String("status", "single", "Filing status")
	computeCmd.Flags().StringArray("deduction", nil, "Deduction as name=amount (repeatable)")
	computeCmd.Flags().String("format", "console", "Output format (console, json, csv)")
	computeCmd.Flags().String("currency", "$", "Currency symbol for console output")

	mortgageCmd.Flags().String("principal", "", "Loan principal (plain loan)")
	mortgageCmd.Flags().String("rate", "", "Annual rate as a fraction (plain loan)")
	mortgageCmd.Flags().String("house-price", "", "House price (combined CN loan)")
	mortgageCmd.Flags().String("down-payment", "0.3", "Down payment ratio (combined CN loan)")
	mortgageCmd.Flags().String("fund-deposit", "", "Monthly housing-fund deposit (combined CN loan)")
	mortgageCmd.Flags().Int("years", 30, "Loan term in years")
	mortgageCmd.Flags().String("method", string(mortgage.EqualInstallment), "Repayment method (equal_installment, equal_principal)")
	mortgageCmd.Flags().String("currency", "¥", "Currency symbol")

	rootCmd.AddCommand(usCmd, cnCmd, computeCmd, mortgageCmd, tuiCmd, versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
