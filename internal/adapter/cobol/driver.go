package cobol

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/finbridge/cardproc/internal/adapter/repository/flatfile"
	"github.com/finbridge/cardproc/internal/domain"
	"github.com/finbridge/cardproc/internal/infrastructure/metrics"
)

// Menu options understood by the batch program.
const (
	menuValidate  = "1"
	menuInterest  = "2"
	menuStatement = "3"
	menuListAll   = "4"
	menuExit      = "5"
)

// Output phrases printed by the batch program.
const (
	phraseCardValid          = "Card number is VALID"
	phraseCardNotFound       = "Card not found"
	phraseStatementGenerated = "Statement generated successfully!"
)

var (
	balancePattern    = regexp.MustCompile(`Current Balance: \$([0-9,]+\.[0-9]+)`)
	aprPattern        = regexp.MustCompile(`APR: ([0-9]+\.[0-9]+)%`)
	chargePattern     = regexp.MustCompile(`Interest Charge: \$([0-9,]+\.[0-9]+)`)
	newBalancePattern = regexp.MustCompile(`New Balance: \$([0-9,]+\.[0-9]+)`)

	cardLinePattern    = regexp.MustCompile(`Card: ([0-9]{4})-\*\*\*\*-\*\*\*\*-([0-9]{4})`)
	namePattern        = regexp.MustCompile(`Name: (.+?)(?:\s+Balance:|\s*$)`)
	listBalancePattern = regexp.MustCompile(`Balance: \$([0-9,]+\.[0-9]+)`)
)

type sessionRunner interface {
	Available() bool
	BinaryPath() string
	Run(ctx context.Context, inputs ...string) (string, error)
}

// Driver performs card operations through the batch program's interactive
// menu and normalizes its textual output.
type Driver struct {
	runner    sessionRunner
	statement *flatfile.StatementFile
	dataPath  string
	logger    zerolog.Logger
}

// NewDriver creates a Driver around a Runner. dataPath is the card data file
// the batch program reads; it is only used for status diagnostics.
func NewDriver(runner *Runner, statement *flatfile.StatementFile, dataPath string, logger zerolog.Logger) *Driver {
	return &Driver{
		runner:    runner,
		statement: statement,
		dataPath:  dataPath,
		logger:    logger,
	}
}

// Available reports whether the batch program can be invoked right now.
func (d *Driver) Available() bool {
	return d.runner.Available()
}

// ValidateCard asks the batch program to Luhn-check a card number.
func (d *Driver) ValidateCard(ctx context.Context, number string) (bool, error) {
	out, err := d.run(ctx, "validate", menuValidate, number, menuExit)
	if err != nil {
		return false, err
	}
	return strings.Contains(out, phraseCardValid), nil
}

// CalculateInterest runs the interest menu option and extracts the labeled
// amounts. The monthly rate is not printed by the program; it is derived
// from the reported APR so both strategies share one response shape.
func (d *Driver) CalculateInterest(ctx context.Context, number string) (domain.InterestResult, error) {
	out, err := d.run(ctx, "interest", menuInterest, number, menuExit)
	if err != nil {
		return domain.InterestResult{}, err
	}

	balance, okBalance := matchAmount(balancePattern, out)
	apr, okAPR := matchAmount(aprPattern, out)
	charge, okCharge := matchAmount(chargePattern, out)
	newBalance, okNew := matchAmount(newBalancePattern, out)

	if !okBalance || !okAPR || !okCharge || !okNew {
		if strings.Contains(out, phraseCardNotFound) {
			return domain.InterestResult{}, domain.ErrCardNotFound
		}
		return domain.InterestResult{}, fmt.Errorf("%w: interest fields missing", domain.ErrUnexpectedOutput)
	}

	return domain.InterestResult{
		CurrentBalance: balance,
		APR:            apr,
		MonthlyRate:    apr.Div(decimal.NewFromInt(12)).Round(2),
		InterestCharge: charge,
		NewBalance:     newBalance,
	}, nil
}

// GenerateStatement runs the statement menu option and reads back the text
// artifact the program writes. A stale artifact is removed up front so a
// failed run cannot serve the previous card's statement.
func (d *Driver) GenerateStatement(ctx context.Context, number string) (string, error) {
	if err := d.statement.Remove(); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrStoreIO, err)
	}

	out, err := d.run(ctx, "statement", menuStatement, number, menuExit)
	if err != nil {
		return "", err
	}

	if strings.Contains(out, phraseCardNotFound) {
		return "", domain.ErrCardNotFound
	}
	if !strings.Contains(out, phraseStatementGenerated) {
		return "", fmt.Errorf("%w: statement confirmation missing", domain.ErrUnexpectedOutput)
	}

	body, err := d.statement.Read(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: statement artifact: %v", domain.ErrExternalProcess, err)
	}
	return body, nil
}

// ListCards runs the list menu option. Lines that do not match the card
// summary pattern are discarded, not errors.
func (d *Driver) ListCards(ctx context.Context) ([]domain.CardSummary, error) {
	out, err := d.run(ctx, "list", menuListAll, menuExit)
	if err != nil {
		return nil, err
	}

	var cards []domain.CardSummary
	for _, line := range strings.Split(out, "\n") {
		card, ok := parseSummaryLine(line)
		if !ok {
			continue
		}
		cards = append(cards, card)
	}

	return cards, nil
}

// Status reports availability plus file diagnostics for the binary and the
// card data file.
func (d *Driver) Status() domain.ProgramStatus {
	return domain.ProgramStatus{
		Available:  d.runner.Available(),
		Executable: statFile(d.runner.BinaryPath()),
		DataFile:   statFile(d.dataPath),
		CheckedAt:  time.Now().UTC(),
	}
}

func (d *Driver) run(ctx context.Context, operation string, inputs ...string) (string, error) {
	start := time.Now()
	out, err := d.runner.Run(ctx, inputs...)
	metrics.ObserveCobolSession(operation, time.Since(start), err)

	if err != nil {
		d.logger.Warn().Err(err).Str("operation", operation).Msg("batch program invocation failed")
		return "", err
	}
	return out, nil
}

func parseSummaryLine(line string) (domain.CardSummary, bool) {
	cardMatch := cardLinePattern.FindStringSubmatch(line)
	nameMatch := namePattern.FindStringSubmatch(line)
	balance, okBalance := matchAmount(listBalancePattern, line)
	if cardMatch == nil || nameMatch == nil || !okBalance {
		return domain.CardSummary{}, false
	}

	return domain.CardSummary{
		CardNumber:     cardMatch[1] + "-****-****-" + cardMatch[2],
		CardholderName: strings.TrimSpace(nameMatch[1]),
		Balance:        balance,
	}, true
}

// matchAmount extracts the pattern's first capture group as a decimal,
// stripping thousands separators.
func matchAmount(pattern *regexp.Regexp, text string) (decimal.Decimal, bool) {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return decimal.Decimal{}, false
	}

	value, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return decimal.Decimal{}, false
	}
	return value, true
}

func statFile(path string) domain.FileStat {
	stat := domain.FileStat{Path: path}

	info, err := os.Stat(path)
	if err != nil {
		return stat
	}

	stat.Exists = true
	stat.SizeBytes = info.Size()
	stat.ModifiedAt = info.ModTime().UTC()
	return stat
}
