package domain

import (
	"sort"
)

// AgentSummary is one row of the per-agent breakdown.
type AgentSummary struct {
	Agent       string  `json:"agent"`
	Color       Color   `json:"color"`
	Hex         string  `json:"hex"`
	TotalWeight float64 `json:"total_weight"`
	Orders      int     `json:"orders"`
}

// Summary is the aggregated view of one render cycle.
type Summary struct {
	// Agents is sorted by total weight, heaviest first.
	Agents []AgentSummary `json:"agents"`
	// TotalOrders counts the filtered orders before joining.
	TotalOrders int `json:"total_orders"`
	// TotalWeight sums every joined record's weight.
	TotalWeight float64 `json:"total_weight"`
}

// Summarize groups records by agent. Missing weights add 0 to the sum but
// still count as an order. Groups start in ascending agent order and are
// then stably sorted by total weight, descending.
func Summarize(records []JoinedRecord) []AgentSummary {
	groups := groupByAgent(records)
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].TotalWeight > groups[j].TotalWeight
	})
	return groups
}

// NewSummary builds the summary table and metrics. totalOrders is the
// filtered order count; colors fills in the swatch of every agent.
func NewSummary(records []JoinedRecord, totalOrders int, colors ColorMap) Summary {
	agents := Summarize(records)
	var total float64
	for i := range agents {
		agents[i].Color = colors.Color(agents[i].Agent)
		agents[i].Hex = agents[i].Color.Hex()
		total += agents[i].TotalWeight
	}
	return Summary{
		Agents:      agents,
		TotalOrders: totalOrders,
		TotalWeight: total,
	}
}

func groupByAgent(records []JoinedRecord) []AgentSummary {
	index := make(map[string]int)
	var groups []AgentSummary
	for _, r := range records {
		i, ok := index[r.Agent]
		if !ok {
			i = len(groups)
			index[r.Agent] = i
			groups = append(groups, AgentSummary{Agent: r.Agent})
		}
		groups[i].TotalWeight += r.WeightOrZero()
		groups[i].Orders++
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Agent < groups[j].Agent
	})
	return groups
}

// ChartSeries is one labelled dataset for a chart.
type ChartSeries struct {
	Title  string    `json:"title"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
	Colors []string  `json:"colors"`
}

// Charts holds the inputs of the two summary charts.
type Charts struct {
	// WeightByAgent feeds the bar chart.
	WeightByAgent ChartSeries `json:"weight_by_agent"`
	// OrdersByAgent feeds the pie chart.
	OrdersByAgent ChartSeries `json:"orders_by_agent"`
}

// BuildCharts returns per-agent weight and order counts in ascending agent
// order, colored like the map.
func BuildCharts(records []JoinedRecord, colors ColorMap) Charts {
	groups := groupByAgent(records)
	charts := Charts{
		WeightByAgent: ChartSeries{Title: "Total weight per agent (kg)"},
		OrdersByAgent: ChartSeries{Title: "Orders per agent"},
	}
	for _, g := range groups {
		hex := colors.Color(g.Agent).Hex()
		charts.WeightByAgent.Labels = append(charts.WeightByAgent.Labels, g.Agent)
		charts.WeightByAgent.Values = append(charts.WeightByAgent.Values, g.TotalWeight)
		charts.WeightByAgent.Colors = append(charts.WeightByAgent.Colors, hex)
		charts.OrdersByAgent.Labels = append(charts.OrdersByAgent.Labels, g.Agent)
		charts.OrdersByAgent.Values = append(charts.OrdersByAgent.Values, float64(g.Orders))
		charts.OrdersByAgent.Colors = append(charts.OrdersByAgent.Colors, hex)
	}
	return charts
}
