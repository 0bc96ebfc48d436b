// File: aggregates.go
// Title: OFX Aggregate Types
// Description: Typed representations of the common OFX statement
//              aggregates. Each type is built from a flattened attribute
//              map by its constructor, which validates and coerces the
//              element values under the caller's strictness policy.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-15
// Modified: 2026-08-15
//
// Change History:
// - 2026-08-15 v0.1.0: Initial aggregate types

package aggregates

import (
	"time"

	"github.com/cockroachdb/apd/v2"

	"github.com/msto63/mOFX/foundation/ofx/registry"
)

// Transaction type values per OFX section 11.4.3
var trnTypes = []string{
	"CREDIT", "DEBIT", "INT", "DIV", "FEE", "SRVCHG", "DEP", "ATM",
	"POS", "XFER", "CHECK", "PAYMENT", "CASH", "DIRECTDEP",
	"DIRECTDEBIT", "REPEATPMT", "OTHER",
}

// Account type values per OFX section 11.3.1.1
var acctTypes = []string{"CHECKING", "SAVINGS", "MONEYMRKT", "CREDITLINE"}

// Severity values of the STATUS aggregate
var statusSeverities = []string{"INFO", "WARN", "ERROR"}

// Status is the OFX STATUS aggregate
type Status struct {
	Code     string
	Severity string
	Message  string
}

// AggregateName returns the OFX tag
func (s *Status) AggregateName() string { return "STATUS" }

func newStatus(attrs registry.Attributes, strict bool) (registry.Aggregate, error) {
	code, err := requireString("STATUS", attrs, "code")
	if err != nil {
		return nil, err
	}
	severity, err := parseEnum("STATUS", attrs, "severity", strict, statusSeverities...)
	if err != nil {
		return nil, err
	}

	return &Status{
		Code:     code,
		Severity: severity,
		Message:  attrs.Get("message"),
	}, nil
}

// Currency is the OFX CURRENCY aggregate carrying the current exchange rate
type Currency struct {
	CurRate *apd.Decimal
	CurSym  string
}

// AggregateName returns the OFX tag
func (c *Currency) AggregateName() string { return "CURRENCY" }

func newCurrency(attrs registry.Attributes, strict bool) (registry.Aggregate, error) {
	rate, err := parseAmount("CURRENCY", attrs, "currate", strict)
	if err != nil {
		return nil, err
	}

	return &Currency{
		CurRate: rate,
		CurSym:  attrs.Get("cursym"),
	}, nil
}

// OrigCurrency is the OFX ORIGCURRENCY aggregate carrying the rate at
// transaction time
type OrigCurrency struct {
	CurRate *apd.Decimal
	CurSym  string
}

// AggregateName returns the OFX tag
func (c *OrigCurrency) AggregateName() string { return "ORIGCURRENCY" }

func newOrigCurrency(attrs registry.Attributes, strict bool) (registry.Aggregate, error) {
	rate, err := parseAmount("ORIGCURRENCY", attrs, "currate", strict)
	if err != nil {
		return nil, err
	}

	return &OrigCurrency{
		CurRate: rate,
		CurSym:  attrs.Get("cursym"),
	}, nil
}

// BankAcctFrom is the OFX BANKACCTFROM aggregate
type BankAcctFrom struct {
	BankID   string
	BranchID string
	AcctID   string
	AcctType string
	AcctKey  string
}

// AggregateName returns the OFX tag
func (a *BankAcctFrom) AggregateName() string { return "BANKACCTFROM" }

func newBankAcctFrom(attrs registry.Attributes, strict bool) (registry.Aggregate, error) {
	bankID, err := requireString("BANKACCTFROM", attrs, "bankid")
	if err != nil {
		return nil, err
	}
	acctID, err := requireString("BANKACCTFROM", attrs, "acctid")
	if err != nil {
		return nil, err
	}
	acctType, err := parseEnum("BANKACCTFROM", attrs, "accttype", strict, acctTypes...)
	if err != nil {
		return nil, err
	}

	return &BankAcctFrom{
		BankID:   bankID,
		BranchID: attrs.Get("branchid"),
		AcctID:   acctID,
		AcctType: acctType,
		AcctKey:  attrs.Get("acctkey"),
	}, nil
}

// CCAcctFrom is the OFX CCACCTFROM aggregate
type CCAcctFrom struct {
	AcctID  string
	AcctKey string
}

// AggregateName returns the OFX tag
func (a *CCAcctFrom) AggregateName() string { return "CCACCTFROM" }

func newCCAcctFrom(attrs registry.Attributes, strict bool) (registry.Aggregate, error) {
	acctID, err := requireString("CCACCTFROM", attrs, "acctid")
	if err != nil {
		return nil, err
	}

	return &CCAcctFrom{
		AcctID:  acctID,
		AcctKey: attrs.Get("acctkey"),
	}, nil
}

// Payee is the OFX PAYEE aggregate
type Payee struct {
	Name       string
	Addr1      string
	Addr2      string
	Addr3      string
	City       string
	State      string
	PostalCode string
	Country    string
	Phone      string
}

// AggregateName returns the OFX tag
func (p *Payee) AggregateName() string { return "PAYEE" }

func newPayee(attrs registry.Attributes, strict bool) (registry.Aggregate, error) {
	name, err := requireString("PAYEE", attrs, "name")
	if err != nil {
		return nil, err
	}

	return &Payee{
		Name:       name,
		Addr1:      attrs.Get("addr1"),
		Addr2:      attrs.Get("addr2"),
		Addr3:      attrs.Get("addr3"),
		City:       attrs.Get("city"),
		State:      attrs.Get("state"),
		PostalCode: attrs.Get("postalcode"),
		Country:    attrs.Get("country"),
		Phone:      attrs.Get("phone"),
	}, nil
}

// LedgerBal is the OFX LEDGERBAL aggregate
type LedgerBal struct {
	BalAmt *apd.Decimal
	DtAsOf time.Time
}

// AggregateName returns the OFX tag
func (b *LedgerBal) AggregateName() string { return "LEDGERBAL" }

func newLedgerBal(attrs registry.Attributes, strict bool) (registry.Aggregate, error) {
	amt, err := parseAmount("LEDGERBAL", attrs, "balamt", strict)
	if err != nil {
		return nil, err
	}
	asOf, err := parseDate("LEDGERBAL", attrs, "dtasof", strict)
	if err != nil {
		return nil, err
	}

	return &LedgerBal{BalAmt: amt, DtAsOf: asOf}, nil
}

// AvailBal is the OFX AVAILBAL aggregate
type AvailBal struct {
	BalAmt *apd.Decimal
	DtAsOf time.Time
}

// AggregateName returns the OFX tag
func (b *AvailBal) AggregateName() string { return "AVAILBAL" }

func newAvailBal(attrs registry.Attributes, strict bool) (registry.Aggregate, error) {
	amt, err := parseAmount("AVAILBAL", attrs, "balamt", strict)
	if err != nil {
		return nil, err
	}
	asOf, err := parseDate("AVAILBAL", attrs, "dtasof", strict)
	if err != nil {
		return nil, err
	}

	return &AvailBal{BalAmt: amt, DtAsOf: asOf}, nil
}

// IncTran is the OFX INCTRAN aggregate: the transaction-inclusion scope
// of a statement request
type IncTran struct {
	DtStart time.Time
	DtEnd   time.Time
	Include bool
}

// AggregateName returns the OFX tag
func (i *IncTran) AggregateName() string { return "INCTRAN" }

func newIncTran(attrs registry.Attributes, strict bool) (registry.Aggregate, error) {
	dtStart, err := parseDate("INCTRAN", attrs, "dtstart", strict)
	if err != nil {
		return nil, err
	}
	dtEnd, err := parseDate("INCTRAN", attrs, "dtend", strict)
	if err != nil {
		return nil, err
	}
	include, err := parseBool("INCTRAN", attrs, "include", strict)
	if err != nil {
		return nil, err
	}

	return &IncTran{DtStart: dtStart, DtEnd: dtEnd, Include: include}, nil
}

// CurrencySource states which aggregate a transaction's currency
// information came from before flattening
type CurrencySource string

const (
	// CurrencySourceNone means no currency aggregate was present
	CurrencySourceNone CurrencySource = ""

	// CurrencySourceCurrent means a CURRENCY aggregate was present
	CurrencySourceCurrent CurrencySource = "CURRENCY"

	// CurrencySourceOriginal means an ORIGCURRENCY aggregate was present
	CurrencySourceOriginal CurrencySource = "ORIGCURRENCY"
)

// StmtTrn is the OFX STMTTRN statement transaction aggregate
type StmtTrn struct {
	TrnType  string
	DtPosted time.Time
	DtUser   time.Time
	DtAvail  time.Time
	TrnAmt   *apd.Decimal
	FitID    string
	CheckNum string
	RefNum   string
	Name     string
	Memo     string
	CurRate  *apd.Decimal
	CurSym   string

	// CurType preserves the currency provenance that flattening
	// destroys. Foreign-currency amounts cannot be interpreted
	// correctly without it.
	CurType CurrencySource
}

// AggregateName returns the OFX tag
func (t *StmtTrn) AggregateName() string { return "STMTTRN" }

func newStmtTrn(attrs registry.Attributes, strict bool) (registry.Aggregate, error) {
	trnType, err := parseEnum("STMTTRN", attrs, "trntype", strict, trnTypes...)
	if err != nil {
		return nil, err
	}
	dtPosted, err := parseDate("STMTTRN", attrs, "dtposted", strict)
	if err != nil {
		return nil, err
	}
	dtUser, err := parseDate("STMTTRN", attrs, "dtuser", strict)
	if err != nil {
		return nil, err
	}
	dtAvail, err := parseDate("STMTTRN", attrs, "dtavail", strict)
	if err != nil {
		return nil, err
	}
	trnAmt, err := parseAmount("STMTTRN", attrs, "trnamt", strict)
	if err != nil {
		return nil, err
	}
	fitID, err := requireString("STMTTRN", attrs, "fitid")
	if err != nil {
		return nil, err
	}
	curRate, err := parseAmount("STMTTRN", attrs, "currate", strict)
	if err != nil {
		return nil, err
	}
	curType, err := parseEnum("STMTTRN", attrs, "curtype", strict,
		string(CurrencySourceCurrent), string(CurrencySourceOriginal))
	if err != nil {
		return nil, err
	}

	return &StmtTrn{
		TrnType:  trnType,
		DtPosted: dtPosted,
		DtUser:   dtUser,
		DtAvail:  dtAvail,
		TrnAmt:   trnAmt,
		FitID:    fitID,
		CheckNum: attrs.Get("checknum"),
		RefNum:   attrs.Get("refnum"),
		Name:     attrs.Get("name"),
		Memo:     attrs.Get("memo"),
		CurRate:  curRate,
		CurSym:   attrs.Get("cursym"),
		CurType:  CurrencySource(curType),
	}, nil
}

// MFInfo is the OFX MFINFO mutual fund information aggregate. Its
// repeated asset class portions are list structures and travel in the
// conversion result, not in the aggregate itself.
type MFInfo struct {
	SecName     string
	Ticker      string
	UniqueID    string
	MFType      string
	YieldPct    *apd.Decimal
	DtYieldAsOf time.Time
	Memo        string
}

// AggregateName returns the OFX tag
func (m *MFInfo) AggregateName() string { return "MFINFO" }

func newMFInfo(attrs registry.Attributes, strict bool) (registry.Aggregate, error) {
	yieldPct, err := parseAmount("MFINFO", attrs, "yield", strict)
	if err != nil {
		return nil, err
	}
	dtYield, err := parseDate("MFINFO", attrs, "dtyieldasof", strict)
	if err != nil {
		return nil, err
	}

	return &MFInfo{
		SecName:     attrs.Get("secname"),
		Ticker:      attrs.Get("ticker"),
		UniqueID:    attrs.Get("uniqueid"),
		MFType:      attrs.Get("mftype"),
		YieldPct:    yieldPct,
		DtYieldAsOf: dtYield,
		Memo:        attrs.Get("memo"),
	}, nil
}

// Portion is one PORTION item of the MFASSETCLASS list
type Portion struct {
	AssetClass string
	Percent    *apd.Decimal
}

// AggregateName returns the OFX tag
func (p *Portion) AggregateName() string { return "PORTION" }

func newPortion(attrs registry.Attributes, strict bool) (registry.Aggregate, error) {
	percent, err := parseAmount("PORTION", attrs, "percent", strict)
	if err != nil {
		return nil, err
	}

	return &Portion{
		AssetClass: attrs.Get("assetclass"),
		Percent:    percent,
	}, nil
}

// FIPortion is one FIPORTION item of the FIMFASSETCLASS list
type FIPortion struct {
	FIAssetClass string
	Percent      *apd.Decimal
}

// AggregateName returns the OFX tag
func (p *FIPortion) AggregateName() string { return "FIPORTION" }

func newFIPortion(attrs registry.Attributes, strict bool) (registry.Aggregate, error) {
	percent, err := parseAmount("FIPORTION", attrs, "percent", strict)
	if err != nil {
		return nil, err
	}

	return &FIPortion{
		FIAssetClass: attrs.Get("fiassetclass"),
		Percent:      percent,
	}, nil
}
