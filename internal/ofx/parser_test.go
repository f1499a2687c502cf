package ofx

import (
	"context"
	"strings"
	"testing"

	"github.com/joshsymonds/hoard/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Sample OFX data for testing.
const sampleBankOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20240315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>USD
<BANKACCTFROM>
<BANKID>123456789
<ACCTID>1234567890
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20240101120000[0:GMT]
<DTEND>20240131120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240115120000[0:GMT]
<TRNAMT>-25.50
<FITID>2024011501
<NAME>STARBUCKS STORE #1234
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>1000.00
<DTASOF>20240131120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

const sampleCreditCardOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20240315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<CREDITCARDMSGSRSV1>
<CCSTMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<CCSTMTRS>
<CURDEF>USD
<CCACCTFROM>
<ACCTID>4111111111111111
</CCACCTFROM>
<BANKTRANLIST>
<DTSTART>20240101120000[0:GMT]
<DTEND>20240131120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240110120000[0:GMT]
<TRNAMT>-89.99
<FITID>2024011002
<NAME>AMAZON MARKETPLACE
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>-450.25
<DTASOF>20240131120000[0:GMT]
</LEDGERBAL>
</CCSTMTRS>
</CCSTMTTRNRS>
</CREDITCARDMSGSRSV1>
</OFX>`

func TestParseBalances_BankStatement(t *testing.T) {
	p := NewParser()

	accounts, err := p.ParseBalances(context.Background(), strings.NewReader(sampleBankOFX))
	require.NoError(t, err)
	require.Len(t, accounts, 1)

	a := accounts[0]
	assert.Equal(t, "ofx-1234567890", a.ID)
	assert.Equal(t, model.CategoryBank, a.Category)
	assert.Equal(t, 1000.0, a.Amount)
	assert.Equal(t, "7890", a.Mask)
	assert.True(t, a.Manual, "imported balances are one-shot, not linked")
	assert.True(t, a.Displayable())
}

func TestParseBalances_CreditCardStatement(t *testing.T) {
	p := NewParser()

	accounts, err := p.ParseBalances(context.Background(), strings.NewReader(sampleCreditCardOFX))
	require.NoError(t, err)
	require.Len(t, accounts, 1)

	a := accounts[0]
	assert.Equal(t, model.CategoryCreditCard, a.Category)
	assert.Equal(t, -450.25, a.Amount, "card debt stays negative")
	assert.Equal(t, "1111", a.Mask)
}

func TestParseBalances_InvalidFile(t *testing.T) {
	p := NewParser()

	_, err := p.ParseBalances(context.Background(), strings.NewReader("not ofx at all"))
	assert.Error(t, err)
}

func TestPreprocessOFX_FixesMixedCaseSeverity(t *testing.T) {
	p := NewParser()

	fixed := p.preprocessOFX("<SEVERITY>Info</SEVERITY>")
	assert.Equal(t, "<SEVERITY>INFO</SEVERITY>", fixed)
}

func TestPreprocessOFX_ClosesUnterminatedTags(t *testing.T) {
	p := NewParser()

	fixed := p.preprocessOFX("<OFX>\n<SIGNONMSGSRSV1\n</OFX>")
	assert.Contains(t, fixed, "<SIGNONMSGSRSV1>")
}
