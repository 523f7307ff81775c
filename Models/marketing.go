package Models

import (
	"fmt"
	"regexp"
	"strings"
)

// MarketingPlanForm carries the business inputs for plan generation.
type MarketingPlanForm struct {
	BusinessName             string `json:"businessName"`
	Industry                 string `json:"industry"`
	TargetAudience           string `json:"targetAudience"`
	Objectives               string `json:"objectives"`
	Budget                   string `json:"budget"`
	Timeline                 string `json:"timeline"`
	CompanyDescription       string `json:"companyDescription"`
	UniqueSellingProposition string `json:"uniqueSellingProposition"`
	Competitors              string `json:"competitors"`
	ExistingChannels         string `json:"existingChannels"`
	ProductsServices         string `json:"productsServices"`
}

type requiredPlanField struct {
	name  string
	value func(*MarketingPlanForm) string
}

var requiredPlanFields = []requiredPlanField{
	{"businessName", func(f *MarketingPlanForm) string { return f.BusinessName }},
	{"industry", func(f *MarketingPlanForm) string { return f.Industry }},
	{"targetAudience", func(f *MarketingPlanForm) string { return f.TargetAudience }},
	{"objectives", func(f *MarketingPlanForm) string { return f.Objectives }},
	{"budget", func(f *MarketingPlanForm) string { return f.Budget }},
	{"timeline", func(f *MarketingPlanForm) string { return f.Timeline }},
}

// CompletionRatio is the fraction of required fields carrying a non-blank
// value. Generation is only permitted at 1.0.
func (f *MarketingPlanForm) CompletionRatio() float64 {
	filled := 0
	for _, field := range requiredPlanFields {
		if strings.TrimSpace(field.value(f)) != "" {
			filled++
		}
	}
	return float64(filled) / float64(len(requiredPlanFields))
}

// MissingFields lists the required fields still blank, in form order.
func (f *MarketingPlanForm) MissingFields() []string {
	missing := []string{}
	for _, field := range requiredPlanFields {
		if strings.TrimSpace(field.value(f)) == "" {
			missing = append(missing, field.name)
		}
	}
	return missing
}

// BuildPrompt composes the generation prompt sent to the gateway.
func (f *MarketingPlanForm) BuildPrompt() string {
	return fmt.Sprintf(`Create a detailed marketing plan for the following business:

Business Name: %s
Industry: %s
Company Description: %s
Products/Services: %s
Unique Selling Proposition: %s
Target Audience: %s
Main Competitors: %s
Existing Marketing Channels: %s
Marketing Objectives: %s
Budget Range: %s
Timeline: %s

Please provide a comprehensive marketing plan that includes:
1. Target market analysis and strategy
2. Recommended marketing channels and tactics
3. Budget allocation across different channels
4. Timeline and implementation phases
5. Key performance metrics
6. Specific recommendations and action items

Format the response as a structured marketing plan with clear sections and actionable insights.`,
		f.BusinessName, f.Industry, f.CompanyDescription, f.ProductsServices,
		f.UniqueSellingProposition, f.TargetAudience, f.Competitors,
		f.ExistingChannels, f.Objectives, f.Budget, f.Timeline)
}

var (
	collapseNewlines = regexp.MustCompile(`\n{3,}`)
	headingMarker    = regexp.MustCompile(`(?m)^###\s+(.*)$`)
	subheadingMarker = regexp.MustCompile(`(?m)^####\s+(.*)$`)
	boldMarker       = regexp.MustCompile(`\*\*(.*?)\*\*`)
)

// BeautifyPlan rewrites the raw plan text for display: escape sequences are
// unescaped, runs of blank lines are collapsed, and markdown-style markers
// become cosmetic section prefixes. The transform is lossy and one-way; the
// output is not meant to be re-parsed.
func BeautifyPlan(raw string) string {
	text := strings.ReplaceAll(raw, `\"`, `"`)
	text = strings.ReplaceAll(text, `\n`, "\n")
	text = collapseNewlines.ReplaceAllString(text, "\n\n")
	text = strings.ReplaceAll(text, "---", "━━━━━━━━━━━━━━")
	text = subheadingMarker.ReplaceAllString(text, "\n📌 $1\n")
	text = headingMarker.ReplaceAllString(text, "\n🎯 $1\n")
	text = boldMarker.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}

// PlanSection is one bucketed slice of the generated plan.
type PlanSection struct {
	Title   string
	Content string
	Items   []string
}

// PlanSections holds the fixed document sections the PDF template lays out.
type PlanSections struct {
	Overview        PlanSection
	TargetMarket    PlanSection
	Strategy        PlanSection
	Budget          PlanSection
	Timeline        PlanSection
	Recommendations PlanSection
}

var bulletPrefix = regexp.MustCompile(`^[-•\d.]\s*`)

// ParsePlanSections buckets the free-form plan text into the document's fixed
// sections using keyword triggers. Lines that match no trigger accumulate in
// the current section; unclassified leading text lands in Overview. Bulleted
// and numbered lines become list items.
func ParsePlanSections(planText string) PlanSections {
	sections := PlanSections{
		Overview:        PlanSection{Title: "Overview"},
		TargetMarket:    PlanSection{Title: "Target Market Analysis"},
		Strategy:        PlanSection{Title: "Marketing Strategy"},
		Budget:          PlanSection{Title: "Budget Allocation"},
		Timeline:        PlanSection{Title: "Implementation Timeline"},
		Recommendations: PlanSection{Title: "Key Recommendations"},
	}
	if planText == "" {
		return sections
	}

	current := &sections.Overview
	for _, line := range strings.Split(planText, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		lower := strings.ToLower(trimmed)
		switch {
		case strings.Contains(lower, "target market") || strings.Contains(lower, "market analysis"):
			current = &sections.TargetMarket
			continue
		case strings.Contains(lower, "strategy") || strings.Contains(lower, "marketing channels"):
			current = &sections.Strategy
			continue
		case strings.Contains(lower, "budget") || strings.Contains(lower, "allocation"):
			current = &sections.Budget
			continue
		case strings.Contains(lower, "timeline") || strings.Contains(lower, "implementation"):
			current = &sections.Timeline
			continue
		case strings.Contains(lower, "recommend") || strings.Contains(lower, "action items"):
			current = &sections.Recommendations
			continue
		}

		if strings.HasPrefix(trimmed, "-") || strings.HasPrefix(trimmed, "•") || startsNumbered(trimmed) {
			item := strings.TrimSpace(bulletPrefix.ReplaceAllString(trimmed, ""))
			if item != "" {
				current.Items = append(current.Items, item)
			}
		} else {
			current.Content += trimmed + "\n"
		}
	}

	for _, section := range []*PlanSection{
		&sections.Overview, &sections.TargetMarket, &sections.Strategy,
		&sections.Budget, &sections.Timeline, &sections.Recommendations,
	} {
		section.Content = strings.TrimSpace(section.Content)
	}
	return sections
}

func startsNumbered(line string) bool {
	if len(line) < 2 {
		return false
	}
	if line[0] < '0' || line[0] > '9' {
		return false
	}
	bound := 4
	if len(line) < bound {
		bound = len(line)
	}
	return strings.Contains(line[:bound], ".")
}

// FormatBudgetRange renders a raw budget range ("5000-10000", "50000+") with
// currency symbols and thousands separators.
func FormatBudgetRange(budget string) string {
	if budget == "" {
		return "Not specified"
	}
	if strings.Contains(budget, "-") {
		parts := strings.SplitN(budget, "-", 2)
		return fmt.Sprintf("$%s - $%s", thousands(parts[0]), thousands(parts[1]))
	}
	if strings.HasSuffix(budget, "+") {
		return fmt.Sprintf("$%s+", thousands(strings.TrimSuffix(budget, "+")))
	}
	return budget
}

func thousands(value string) string {
	value = strings.TrimSpace(value)
	if len(value) <= 3 {
		return value
	}
	var out strings.Builder
	lead := len(value) % 3
	if lead > 0 {
		out.WriteString(value[:lead])
	}
	for i := lead; i < len(value); i += 3 {
		if out.Len() > 0 {
			out.WriteString(",")
		}
		out.WriteString(value[i : i+3])
	}
	return out.String()
}
