package PDF

import (
	"bytes"
	"testing"

	"MedicalSuite/Models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuoteDocument(t *testing.T) {
	result := Models.QuoteResult{
		Total: "R500",
		Items: []Models.QuoteItem{
			{
				Category: "X-Ray",
				Details: []Models.QuoteDetail{
					{Name: "Film", Cost: "R300"},
					{Name: "Reading Fee", Cost: "R200"},
				},
			},
		},
	}
	client := QuoteClient{Name: "Jo", Surname: "Mokoena", CompanyName: "Bright Smiles"}

	doc := NewQuoteDocument(result, client)
	require.NoError(t, doc.Error())

	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestNewMarketingPlanDocument(t *testing.T) {
	form := Models.MarketingPlanForm{
		BusinessName: "Bright Smiles Dental",
		Industry:     "Healthcare",
		Budget:       "5000-10000",
		Timeline:     "6 months",
	}
	plan := "Target Market Analysis\nFamilies.\nMarketing Strategy\n- Referral program"

	doc := NewMarketingPlanDocument(plan, form)
	require.NoError(t, doc.Error())

	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
