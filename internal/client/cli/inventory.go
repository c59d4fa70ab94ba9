package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/freshify/internal/client/client"
	"github.com/dmitrijs2005/freshify/internal/inventory"
)

func (a *App) List(ctx context.Context) error {
	listing, err := a.inventory.List(ctx, a.user())
	if err != nil {
		return err
	}
	if listing.Offline {
		a.setMode(ModeOffline)
	}
	renderListing(a.out, listing)
	return nil
}

// Scan analyses a fridge photo, optionally seeded with a receipt, asks for
// any missing expiries and saves the confirmed list.
func (a *App) Scan(ctx context.Context, image, receipt string) error {
	if err := a.requireOnline(); err != nil {
		return err
	}

	var purchased []inventory.PurchasedItem
	if receipt != "" {
		items, err := a.inventory.AnalyzeReceipt(ctx, receipt)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Receipt: %d item(s) recognised\n", len(items))
		purchased = items
	}

	result, err := a.inventory.Scan(ctx, image, purchased)
	if err != nil {
		return err
	}
	if len(result.Items) == 0 {
		fmt.Fprintln(a.out, "Nothing recognised in the image")
		return nil
	}

	renderConsolidated(a.out, result.Items)

	items, err := a.fillMissingExpiry(result.Items)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "Nothing to save")
		return nil
	}

	ok, err := Confirm(a.reader, fmt.Sprintf("Save %d item(s)?", len(items)), a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Discarded")
		return nil
	}

	ids, err := a.inventory.Save(ctx, result.ImageRef, items)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved %d item(s)\n", len(ids))
	return nil
}

// fillMissingExpiry prompts for items the analysis left without an expiry.
// An empty answer drops the item.
func (a *App) fillMissingExpiry(items []inventory.ConsolidatedItem) ([]inventory.ConsolidatedItem, error) {
	out := make([]inventory.ConsolidatedItem, 0, len(items))
	for _, it := range items {
		for it.ExpirationDays == nil {
			answer, err := getSimpleText(a.reader, fmt.Sprintf("Days until %s expires (empty to skip)", it.Name), a.out)
			if err != nil {
				return nil, err
			}
			if answer == "" {
				break
			}
			days, err := strconv.Atoi(answer)
			if err != nil {
				fmt.Fprintln(a.out, "Please enter a whole number of days")
				continue
			}
			it.ExpirationDays = &days
		}
		if it.ExpirationDays != nil {
			out = append(out, it)
		}
	}
	return out, nil
}

func (a *App) Complete(ctx context.Context, id int64) error {
	if err := a.requireOnline(); err != nil {
		return err
	}
	resp, err := a.inventory.Complete(ctx, id)
	if err != nil {
		return err
	}
	if resp.Credited {
		fmt.Fprintf(a.out, "Item #%d used in time, counted as saved\n", id)
	} else {
		fmt.Fprintf(a.out, "Item #%d marked as used\n", id)
	}
	renderImpact(a.out, &resp.Impact)
	return nil
}

func (a *App) Waste(ctx context.Context, id int64) error {
	if err := a.requireOnline(); err != nil {
		return err
	}
	resp, err := a.inventory.Waste(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Item #%d marked as wasted\n", id)
	renderImpact(a.out, &resp.Impact)
	return nil
}

// SetQuantity sets an absolute quantity, or decrements by one for "-" and "-1".
func (a *App) SetQuantity(ctx context.Context, id int64, arg string) error {
	if err := a.requireOnline(); err != nil {
		return err
	}

	if arg == "-" || arg == "-1" {
		q, err := a.inventory.DecrementQuantity(ctx, a.user(), id)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Item #%d quantity is now %d\n", id, q)
		return nil
	}

	q, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("%w: quantity must be a number or '-'", client.ErrInvalidInput)
	}
	if err := a.inventory.SetQuantity(ctx, id, q); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Item #%d quantity is now %d\n", id, q)
	return nil
}

func (a *App) UpdateExpiry(ctx context.Context, id int64, days int) error {
	if err := a.requireOnline(); err != nil {
		return err
	}
	if err := a.inventory.UpdateExpiry(ctx, id, days); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Item #%d now expires in %d day(s)\n", id, days)
	return nil
}

func (a *App) Impact(ctx context.Context) error {
	if err := a.requireOnline(); err != nil {
		return err
	}
	imp, err := a.inventory.Impact(ctx)
	if err != nil {
		return err
	}
	renderImpact(a.out, imp)
	return nil
}

func (a *App) Recipe(ctx context.Context, focus string) error {
	if err := a.requireOnline(); err != nil {
		return err
	}
	r, err := a.inventory.Recipe(ctx, focus)
	if err != nil {
		return err
	}
	renderRecipe(a.out, r)
	return nil
}
