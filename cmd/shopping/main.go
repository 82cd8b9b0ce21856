package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dharmasatrya/offerresolver/internal/models"
	"github.com/dharmasatrya/offerresolver/internal/resolver"
	"github.com/dharmasatrya/offerresolver/internal/store"
)

type options struct {
	file    string
	flight  string
	brand   string
	offerID string
	sortBy  string
}

func main() {
	log.SetFlags(0)

	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	if err := run(context.Background(), opts, os.Stdout); err != nil {
		log.Fatalf("Error processing file: %v", err)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("shopping", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.file, "file", "", "shopping response JSON file (required)")
	fs.StringVar(&opts.flight, "flight", "", "keep itineraries containing this flight, e.g. AF123")
	fs.StringVar(&opts.brand, "brand", "", "keep offers whose brand contains this text")
	fs.StringVar(&opts.offerID, "offer", "", "show fare, baggage and penalty details for one offer id")
	fs.StringVar(&opts.sortBy, "sort", "", "sort results; only departure_time is supported")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.file == "" {
		fmt.Fprintln(stderr, "Error: --file argument missing or incomplete")
		fs.Usage()
		return opts, errors.New("missing --file")
	}

	sortBy, err := models.NormalizeSortKey(opts.sortBy)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return opts, err
	}
	opts.sortBy = sortBy

	return opts, nil
}

func run(ctx context.Context, opts options, w io.Writer) error {
	files := store.NewFileStore("")
	defer files.Close()

	raw, found, err := files.Get(ctx, opts.file)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("file not found: %s", opts.file)
	}

	doc, err := resolver.Decode(raw)
	if err != nil {
		return err
	}
	r, err := resolver.New(doc)
	if err != nil {
		return err
	}

	if opts.offerID != "" {
		d, err := r.OfferDetail(opts.offerID)
		if errors.Is(err, resolver.ErrOfferNotFound) {
			fmt.Fprintf(w, "--- Details for Offer ID: %s ---\n\nOffer ID %s not found.\n", opts.offerID, opts.offerID)
			return nil
		}
		if err != nil {
			return err
		}
		printDetail(w, d)
		return nil
	}

	offers, err := r.Offers(&models.SearchFilters{Flight: opts.flight, Brand: opts.brand}, opts.sortBy)
	if err != nil {
		return err
	}
	printOffers(w, offers)
	return nil
}
