package domainfolio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// amountCmd is a specialized struct to read a ledger amount in two fields.
// we could use json "inline" but it would work for some transactions not all.
type amountCmd struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func (a amountCmd) Money() Money {
	return M(a.Amount, a.Currency)
}

// optMoney builds a Money from an optional amount field. A zero amount maps
// back to the zero Money, matching the encoder that omits zero amounts.
func (a amountCmd) optMoney(v decimal.Decimal) Money {
	if v.IsZero() {
		return Money{}
	}
	return M(v, a.Currency)
}

// DecodeTransactions decodes transactions from a stream of JSONL data, one
// transaction per line, dispatching on the command discriminator (and the
// payment plan for sales). Transactions are appended to the ledger unsorted;
// callers sort once at the end.
func DecodeTransactions(r io.Reader, ledger *Ledger) error {
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Command CommandType `json:"command"`
			Plan    PaymentPlan `json:"plan"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return fmt.Errorf("could not identify command in line %q: %w", string(lineBytes), err)
		}

		var decodedTx Transaction
		var err error

		switch identifier.Command {
		case CmdBuy:
			var tx Buy
			err = json.Unmarshal(lineBytes, &tx)
			decodedTx = tx
		case CmdRenew:
			var tx Renew
			err = json.Unmarshal(lineBytes, &tx)
			decodedTx = tx
		case CmdSell:
			if identifier.Plan == PlanInstallments {
				var tx InstallmentSell
				err = json.Unmarshal(lineBytes, &tx)
				decodedTx = tx
			} else {
				var tx Sell
				err = json.Unmarshal(lineBytes, &tx)
				decodedTx = tx
			}
		case CmdTransfer:
			var tx Transfer
			err = json.Unmarshal(lineBytes, &tx)
			decodedTx = tx
		case CmdFee:
			var tx Fee
			err = json.Unmarshal(lineBytes, &tx)
			decodedTx = tx
		default:
			err = fmt.Errorf("unknown transaction command: %q", identifier.Command)
		}

		if err != nil {
			return err
		}
		ledger.append(decodedTx)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading from input: %w", err)
	}
	return nil
}

// DecodeLedger decodes a full ledger from its two JSONL streams: the domain
// records and the transaction history. The returned ledger is sorted.
func DecodeLedger(domains, transactions io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	if err := DecodeDomains(domains, ledger); err != nil {
		return nil, err
	}
	if err := DecodeTransactions(transactions, ledger); err != nil {
		return nil, err
	}
	ledger.stableSort()
	return ledger, nil
}

// EncodeTransaction marshals a single transaction to JSON and writes it to the
// writer, followed by a newline, in JSONL format.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	decimal.MarshalJSONWithoutQuotes = true
	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write transaction: %w", err)
	}
	return nil
}

// EncodeTransactions reorders transactions by date and persists them to an
// io.Writer in JSONL format. The sort is stable, meaning transactions on the
// same day maintain their original relative order. The field order within
// each transaction is canonical, so re-encoding an unchanged ledger is a
// byte-identical rewrite.
func EncodeTransactions(w io.Writer, ledger *Ledger) error {
	decimal.MarshalJSONWithoutQuotes = true

	ledger.stableSort()
	for _, tx := range ledger.transactions {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}
