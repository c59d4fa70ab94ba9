package cli

import (
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"github.com/dmitrijs2005/freshify/internal/client/services"
	"github.com/dmitrijs2005/freshify/internal/freshness"
	"github.com/dmitrijs2005/freshify/internal/inventory"
	"github.com/dmitrijs2005/freshify/internal/rpc"
)

func renderListing(w io.Writer, l *services.Listing) {
	if l.Offline {
		fmt.Fprintf(w, "(offline, last synced %s)\n", l.SyncedAt.Local().Format("2006-01-02 15:04"))
	}
	if len(l.Items) == 0 {
		fmt.Fprintln(w, "No items")
		return
	}

	soon, other := freshness.Partition(l.Items, func(it rpc.Item) int { return it.Expiry })
	renderSection(w, "Expiring soon", soon)
	renderSection(w, "Other", other)
}

func renderSection(w io.Writer, title string, items []rpc.Item) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintln(w, title)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, it := range items {
		fmt.Fprintf(tw, "  #%d\t%s\tx%d\t%s\t%s\t%s\n",
			it.ID, it.Name, it.Quantity, it.Price.StringFixed(2), formatDays(it.Expiry), it.Band)
	}
	_ = tw.Flush()
}

func formatDays(d int) string {
	switch {
	case d < 0:
		return fmt.Sprintf("expired %dd ago", -d)
	case d == 0:
		return "today"
	default:
		return fmt.Sprintf("%dd", d)
	}
}

func renderConsolidated(w io.Writer, items []inventory.ConsolidatedItem) {
	fmt.Fprintln(w, "Recognised items")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, it := range items {
		expiry := "?"
		if it.ExpirationDays != nil {
			expiry = formatDays(*it.ExpirationDays)
		}
		fmt.Fprintf(tw, "  %d.\t%s\tx%d\t%s\t%s\n", i+1, it.Name, it.Quantity, it.Price.StringFixed(2), expiry)
	}
	_ = tw.Flush()
}

func renderImpact(w io.Writer, imp *rpc.Impact) {
	fmt.Fprintf(w, "Money saved: %s\n", imp.MoneySaved.StringFixed(2))
	fmt.Fprintf(w, "Meals saved: %d\n", imp.MealsSaved)
	fmt.Fprintf(w, "Waste incidents: %d\n", imp.WasteIncidents)
}

func renderRecipe(w io.Writer, r *inventory.Recipe) {
	fmt.Fprintln(w, r.Name)
	if r.Description != "" {
		fmt.Fprintln(w, r.Description)
	}
	if r.CookingTime != "" {
		fmt.Fprintf(w, "Cooking time: %s\n", r.CookingTime)
	}

	if len(r.Ingredients) > 0 {
		fmt.Fprintln(w, "Ingredients:")
		names := make([]string, 0, len(r.Ingredients))
		for name := range r.Ingredients {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			ing := r.Ingredients[name]
			mark := "need"
			if ing.Have {
				mark = "have"
			}
			fmt.Fprintf(w, "  - %s %s (%s)\n", ing.Quantity, name, mark)
		}
	}

	if len(r.Instructions) > 0 {
		fmt.Fprintln(w, "Steps:")
		for i, step := range r.Instructions {
			fmt.Fprintf(w, "  %d. %s\n", i+1, step)
		}
	}
	for _, b := range r.NutritionalBenefits {
		fmt.Fprintf(w, "  * %s\n", b)
	}
}
