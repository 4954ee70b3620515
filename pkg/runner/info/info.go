package info

import (
	"context"
	"fmt"
	"os"

	"tableflip.dev/ritual/pkg/app"
	"tableflip.dev/ritual/pkg/store"
)

type Info struct {
	Config  store.Config
	Service *app.Service
}

func (n *Info) Do(ctx context.Context) error {

	if override := os.Getenv("RITUAL_CONFIG_PATH"); override != "" {
		fmt.Println("RITUAL_CONFIG_PATH found on env, using ", override)
	} else {
		fmt.Println("RITUAL_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	fmt.Println("Config.path: ", n.Config.BasePath())
	if c := n.Config.CatalogPath(); c != "" {
		fmt.Println("Config.catalog: ", c)
	} else {
		fmt.Println("Config.catalog: built-in")
	}

	if n.Service == nil {
		return fmt.Errorf("failed to create service")
	}

	fmt.Println("Today: ", n.Service.Progress.Today())
	fmt.Printf("Categories:\n")
	cats, err := n.Service.Categories(ctx)
	if err != nil {
		return err
	}
	for _, c := range cats {
		fmt.Printf("  %s (%d)\n", c.Key, c.Items)
	}
	if len(cats) == 0 {
		fmt.Printf("  %s\n", "no categories")
	}

	ordered := n.Service.Overlay.OrderedCategories(ctx)
	fmt.Printf("Custom order lists: %d\n", len(ordered))
	days := n.Service.Persistence.Keys(ctx, store.PrefixDay)
	fmt.Printf("Days recorded: %d\n", len(days))

	return nil
}
