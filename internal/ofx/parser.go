// Package ofx imports account balances from OFX/QFX statement files.
package ofx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/aclindsa/ofxgo"
	"github.com/joshsymonds/hoard/internal/model"
)

// Parser implements OFX/QFX file parsing.
type Parser struct{}

// NewParser creates a new OFX parser.
func NewParser() *Parser {
	return &Parser{}
}

// preprocessOFX fixes common formatting issues in OFX files.
func (p *Parser) preprocessOFX(content string) string {
	// Trim any leading whitespace or blank lines before the header
	content = strings.TrimLeft(content, " \t\r\n")

	// Fix mixed-case SEVERITY values (should be INFO, WARN, or ERROR)
	severityRegex := regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	content = severityRegex.ReplaceAllStringFunc(content, func(match string) string {
		return strings.ToUpper(match)
	})

	// Fix missing closing angle brackets in SGML-style OFX files.
	// Pattern: <TAGNAME at end of line (no > and no content after tag)
	tagFixRegex := regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
	content = tagFixRegex.ReplaceAllString(content, "$1>")

	return content
}

// ParseBalances parses an OFX/QFX file and returns one account per
// statement, carrying the statement's ledger balance. Imported accounts
// are marked manual: an OFX file is a one-shot snapshot, not a linked
// provider that can be refreshed.
func (p *Parser) ParseBalances(ctx context.Context, reader io.Reader) ([]model.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	processedContent := p.preprocessOFX(string(content))

	resp, err := ofxgo.ParseResponse(strings.NewReader(processedContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var accounts []model.Account
	var bankStmts, ccStmts int

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok {
			bankStmts++
			accounts = append(accounts, p.convertBankStatement(stmt))
		}
	}

	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok {
			ccStmts++
			accounts = append(accounts, p.convertCreditCardStatement(stmt))
		}
	}

	slog.Info("Parsed OFX file",
		"accounts", len(accounts),
		"bank_statements", bankStmts,
		"cc_statements", ccStmts)

	return accounts, nil
}

// convertBankStatement maps a bank statement's ledger balance to an account.
func (p *Parser) convertBankStatement(stmt *ofxgo.StatementResponse) model.Account {
	acctID := string(stmt.BankAcctFrom.AcctID)
	raw := strings.ToLower(fmt.Sprintf("%v", stmt.BankAcctFrom.AcctType))
	if raw == "" {
		raw = "bank"
	}

	// BalAmt is a big.Rat
	balance, _ := stmt.BalAmt.Float64()

	return model.Account{
		ID:          "ofx-" + acctID,
		Name:        accountDisplayName("Bank", acctID),
		RawCategory: raw,
		Category:    model.NormalizeCategory(raw),
		Amount:      balance,
		Mask:        maskFrom(acctID),
		Manual:      true,
		LastSynced:  statementTime(stmt.DtAsOf.Time),
	}
}

// convertCreditCardStatement maps a credit card statement's ledger balance
// to an account. OFX reports card debt as a negative balance already, so
// the amount passes through unchanged.
func (p *Parser) convertCreditCardStatement(stmt *ofxgo.CCStatementResponse) model.Account {
	acctID := string(stmt.CCAcctFrom.AcctID)
	balance, _ := stmt.BalAmt.Float64()

	return model.Account{
		ID:          "ofx-" + acctID,
		Name:        accountDisplayName("Credit Card", acctID),
		RawCategory: "credit card",
		Category:    model.CategoryCreditCard,
		Amount:      balance,
		Mask:        maskFrom(acctID),
		Manual:      true,
		LastSynced:  statementTime(stmt.DtAsOf.Time),
	}
}

func accountDisplayName(kind, acctID string) string {
	if mask := maskFrom(acctID); mask != "" {
		return fmt.Sprintf("%s ····%s", kind, mask)
	}
	return kind
}

// maskFrom returns the last four characters of an account ID.
func maskFrom(acctID string) string {
	if len(acctID) < 4 {
		return acctID
	}
	return acctID[len(acctID)-4:]
}

func statementTime(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t
}
