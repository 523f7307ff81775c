package Models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// OfferingRecord is one flat row from the gateway's quoteModule/getAll list.
type OfferingRecord struct {
	CompanyName string   `json:"CompanyName"`
	Offering    string   `json:"Offering"`
	Key         string   `json:"compNameOfferering"`
	Fields      []string `json:"fields"`
}

type QuoteOffering struct {
	ID     int      `json:"id"`
	Name   string   `json:"name"`
	Key    string   `json:"key"`
	Fields []string `json:"fields"`
}

type Company struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Offerings []QuoteOffering `json:"offerings"`
}

// GroupOfferingsByCompany groups the flat offering list by company name,
// preserving first-seen company order and first-seen offering order within a
// company. Duplicate (company, offering) pairs are kept as delivered; the
// upstream list is assumed clean.
func GroupOfferingsByCompany(records []OfferingRecord) []Company {
	companies := make([]Company, 0)
	index := make(map[string]int)

	for i, record := range records {
		offering := QuoteOffering{
			ID:     i + 1,
			Name:   record.Offering,
			Key:    record.Key,
			Fields: record.Fields,
		}
		if offering.Fields == nil {
			offering.Fields = []string{}
		}

		if at, seen := index[record.CompanyName]; seen {
			companies[at].Offerings = append(companies[at].Offerings, offering)
			continue
		}
		index[record.CompanyName] = len(companies)
		companies = append(companies, Company{
			ID:        len(companies) + 1,
			Name:      record.CompanyName,
			Offerings: []QuoteOffering{offering},
		})
	}
	return companies
}

// ValidateQuoteFields checks the submitted values against the offering's
// field names. A field whose name contains "optional" (case-insensitively) is
// never required; every other field must carry a non-blank value. An empty
// result map means the submission may proceed.
func ValidateQuoteFields(values map[string]string, fields []string) map[string]string {
	errors := make(map[string]string)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), "optional") {
			continue
		}
		if strings.TrimSpace(values[field]) == "" {
			errors[field] = fmt.Sprintf("%s is required", field)
		}
	}
	return errors
}

type QuoteDetail struct {
	Name     string   `json:"name"`
	Cost     string   `json:"cost"`
	SubItems []string `json:"subItems,omitempty"`
}

type QuoteItem struct {
	Category string        `json:"category"`
	Details  []QuoteDetail `json:"details"`
}

type QuoteResult struct {
	Items []QuoteItem `json:"items"`
	Total string      `json:"total"`
}

// Keys that describe the record itself rather than priceable line items.
var excludedQuoteKeys = map[string]struct{}{
	"Offering":           {},
	"total":              {},
	"compNameOfferering": {},
	"CompanyName":        {},
}

// ReshapeQuoteResponse turns the gateway's offering-cost payload into a
// displayable quote. The payload may be a single object or a list; a single
// object is treated exactly like a one-element list. Every key outside the
// excluded set whose value is truthy becomes one line item, in the order the
// keys appear on the wire. Malformed input degrades to an empty quote with a
// zero total; this function never panics.
func ReshapeQuoteResponse(raw []byte) QuoteResult {
	result := QuoteResult{Items: []QuoteItem{}, Total: "R0"}

	records := decodeQuoteRecords(raw)
	if len(records) == 0 {
		return result
	}

	if total, ok := records[0].lookup("total"); ok && truthy(total) {
		result.Total = stringifyCost(total)
	}

	for _, record := range records {
		item := QuoteItem{Details: []QuoteDetail{}}
		if offering, ok := record.lookup("Offering"); ok {
			item.Category = stringifyCost(offering)
		}
		for _, entry := range record {
			if _, excluded := excludedQuoteKeys[entry.key]; excluded {
				continue
			}
			if !truthy(entry.value) {
				continue
			}
			item.Details = append(item.Details, QuoteDetail{
				Name: entry.key,
				Cost: stringifyCost(entry.value),
			})
		}
		result.Items = append(result.Items, item)
	}
	return result
}

// FormatCurrency renders a cost value with the currency prefix and two
// decimals. Values already carrying the prefix pass through unchanged.
// Non-numeric values collapse to a zero amount instead of propagating NaN.
func FormatCurrency(value any) string {
	if s, ok := value.(string); ok && strings.HasPrefix(s, "R") {
		return s
	}
	f, ok := toFloat(value)
	if !ok {
		return "R0.00"
	}
	return fmt.Sprintf("R%.2f", f)
}

// GroupItemsByCategory buckets quote items by category name, with a fallback
// bucket for unnamed categories.
func GroupItemsByCategory(items []QuoteItem) map[string][]QuoteItem {
	grouped := make(map[string][]QuoteItem)
	for _, item := range items {
		category := item.Category
		if category == "" {
			category = "Uncategorized"
		}
		grouped[category] = append(grouped[category], item)
	}
	return grouped
}

// CalculateTotals sums the numeric portion of each detail cost. Costs that do
// not parse count as zero.
func CalculateTotals(details []QuoteDetail) float64 {
	var total float64
	for _, detail := range details {
		cost, err := strconv.ParseFloat(strings.TrimPrefix(detail.Cost, "R"), 64)
		if err != nil {
			continue
		}
		total += cost
	}
	return total
}

// quoteEntry and quoteRecord keep the wire order of keys, which Go maps would
// discard.
type quoteEntry struct {
	key   string
	value any
}

type quoteRecord []quoteEntry

func (r quoteRecord) lookup(key string) (any, bool) {
	for _, entry := range r {
		if entry.key == key {
			return entry.value, true
		}
	}
	return nil, false
}

func decodeQuoteRecords(raw []byte) []quoteRecord {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil
	}

	switch tok {
	case json.Delim('{'):
		record, err := decodeRecord(dec)
		if err != nil {
			return nil
		}
		return []quoteRecord{record}
	case json.Delim('['):
		var records []quoteRecord
		for dec.More() {
			elem, err := dec.Token()
			if err != nil {
				return records
			}
			if elem != json.Delim('{') {
				// Non-object list elements carry no line items.
				continue
			}
			record, err := decodeRecord(dec)
			if err != nil {
				return records
			}
			records = append(records, record)
		}
		return records
	default:
		return nil
	}
}

// decodeRecord consumes an object whose opening brace has been read, keeping
// key order.
func decodeRecord(dec *json.Decoder) (quoteRecord, error) {
	var record quoteRecord
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := keyTok.(string)
		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		record = append(record, quoteEntry{key: key, value: value})
	}
	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return record, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch tok {
	case json.Delim('{'):
		nested := make(map[string]any)
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, _ := keyTok.(string)
			value, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			nested[key] = value
		}
		_, err := dec.Token()
		return nested, err
	case json.Delim('['):
		nested := make([]any, 0)
		for dec.More() {
			value, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			nested = append(nested, value)
		}
		_, err := dec.Token()
		return nested, err
	default:
		return tok, nil
	}
}

func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case json.Number:
		f, err := v.Float64()
		return err == nil && f != 0
	case map[string]any:
		return len(v) > 0
	case []any:
		return len(v) > 0
	default:
		return true
	}
}

func stringifyCost(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
