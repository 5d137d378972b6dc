// Command admin is a terminal front end for the sushi catalog: it lists the
// menu with the same filter, sort and pagination behavior as the web
// interface, and can add or archive items.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"text/tabwriter"

	"sushimenu/internal/admin"
	"sushimenu/internal/browse"
	"sushimenu/internal/client"
	"sushimenu/internal/config"
	"sushimenu/internal/logger"
	"sushimenu/internal/sushi"
)

type stdoutNotifier struct{}

func (stdoutNotifier) Success(msg string) { fmt.Println(msg) }
func (stdoutNotifier) Failure(msg string) { fmt.Fprintln(os.Stderr, msg) }

func main() {
	cfg := config.LoadClientConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	session := admin.NewSession(client.New(cfg.CatalogAPIURL), stdoutNotifier{})

	if len(os.Args) < 2 {
		usage()
	}

	ctx := context.Background()

	var err error
	switch os.Args[1] {
	case "list":
		err = runList(ctx, session, os.Args[2:])
	case "add":
		err = runAdd(ctx, session, os.Args[2:])
	case "archive":
		err = runArchive(ctx, session, os.Args[2:])
	default:
		usage()
	}

	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: admin <list|add|archive> [flags]")
	os.Exit(2)
}

func runList(ctx context.Context, session *admin.Session, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	search := fs.String("search", "", "search by name or fish type")
	typeFilter := fs.String("type", "all", "all, Nigiri or Roll")
	minPrice := fs.Float64("min", browse.DefaultPriceMin, "minimum price")
	maxPrice := fs.Float64("max", browse.DefaultPriceMax, "maximum price")
	sortName := fs.String("sort-name", "none", "none, asc or desc")
	sortPrice := fs.String("sort-price", "none", "none, asc or desc")
	page := fs.Int("page", 1, "page number")
	fs.Parse(args)

	st := session.State()
	st.SetSearchQuery(*search)
	st.SetTypeFilter(browse.TypeFilter(*typeFilter))
	st.SetPriceRange(browse.PriceRange{Min: *minPrice, Max: *maxPrice})
	if *sortPrice != "none" {
		st.SetPriceSort(browse.SortOrder(*sortPrice))
	}
	if *sortName != "none" {
		st.SetNameSort(browse.SortOrder(*sortName))
	}
	st.SetCurrentPage(*page)

	result, err := session.Browse(ctx)
	if err != nil {
		return fmt.Errorf("failed to load menu: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tDETAIL\tPRICE")
	for _, item := range result.Items {
		detail := ""
		if fish, ok := item.FishType(); ok {
			detail = fish
		} else if pieces, ok := item.Pieces(); ok {
			detail = strconv.Itoa(pieces) + " pieces"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", item.ID, item.Name, item.Type, detail, item.Price)
	}
	w.Flush()

	if result.FilteredCount == 0 {
		fmt.Println("no items match")
		return nil
	}

	fmt.Printf("page %d of %d (%d items)\n", st.CurrentPage, result.TotalPages, result.FilteredCount)
	return nil
}

func runAdd(ctx context.Context, session *admin.Session, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	name := fs.String("name", "", "item name")
	itemType := fs.String("type", "", "Nigiri or Roll")
	price := fs.String("price", "", "price, e.g. 12.99")
	image := fs.String("image", "", "image URL")
	fish := fs.String("fish", "", "fish type (Nigiri)")
	pieces := fs.String("pieces", "", "piece count (Roll)")
	fs.Parse(args)

	session.OpenForm()
	session.SetForm(sushi.CreateInput{
		Name:     *name,
		Type:     sushi.Type(*itemType),
		Price:    *price,
		Image:    *image,
		FishType: *fish,
		Pieces:   *pieces,
	})

	if err := session.SubmitCreate(ctx); err != nil {
		for field, msg := range session.FieldErrors() {
			fmt.Fprintf(os.Stderr, "%s: %s\n", field, msg)
		}
		return err
	}
	return nil
}

func runArchive(ctx context.Context, session *admin.Session, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("archive requires an item id")
	}
	id := args[0]

	return session.Archive(ctx, sushi.Sushi{ID: id, Name: id})
}
