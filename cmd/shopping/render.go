package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dharmasatrya/offerresolver/internal/itinerary"
	"github.com/dharmasatrya/offerresolver/internal/models"
)

const rule = "---------------------------------------------------"

func printOffers(w io.Writer, offers []models.OfferRecord) {
	fmt.Fprintln(w, "--- Available Offers ---")

	for _, o := range offers {
		fmt.Fprintf(w, "Offer ID: %s\n", o.OfferID)
		fmt.Fprintf(w, "  Departures: %s\n", strings.Join(o.DepartureTimesByDirection, " | "))
		fmt.Fprintf(w, "  Price:      %s\n", o.Price.Display)
		fmt.Fprintf(w, "  Company:    %s\n", o.ValidatingCarrier)
		fmt.Fprintf(w, "  Fare Basis: %s\n", o.FareBasis)
		fmt.Fprintf(w, "  Brand:      %s\n", o.Brand)
		fmt.Fprintln(w, "  Route:")
		for _, dir := range o.Directions {
			fmt.Fprintf(w, "    [ %s ]\n", dir.Label)
			for _, s := range dir.Segments {
				fmt.Fprintf(w, "      - %s\n", itinerary.SegmentLine(s))
			}
		}
		fmt.Fprintln(w, rule)
	}

	fmt.Fprintf(w, "\nTotal Offers Found: %d\n", len(offers))
}

func printDetail(w io.Writer, d *models.OfferDetail) {
	fmt.Fprintf(w, "--- Details for Offer ID: %s ---\n\n", d.OfferID)
	if d.Synthetic {
		fmt.Fprintf(w, "Offer Found: %s (Generated ID)\n", d.OfferID)
	} else {
		fmt.Fprintf(w, "Offer Found: %s\n", d.OfferID)
	}
	fmt.Fprintf(w, "Validating Carrier: %s\n", d.ValidatingCarrier)

	if d.Price != nil {
		fmt.Fprintln(w, "\n--- Price Details ---")
		fmt.Fprintf(w, "Total: %s\n", d.Price.Total)
		fmt.Fprintf(w, "Base:  %s\n", d.Price.Base)
		fmt.Fprintf(w, "Taxes: %s\n", d.Price.Taxes)
	}

	fmt.Fprintln(w, "\n--- Itinerary ---")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Date\tRoute\tFlights")
	for _, row := range d.Itinerary {
		flights := row.Segments
		if len(flights) == 0 {
			flights = []string{""}
		}
		for i, f := range flights {
			if i == 0 {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", row.Date, row.Route, f)
				continue
			}
			fmt.Fprintf(tw, "\t\t%s\n", f)
		}
	}
	tw.Flush()

	fmt.Fprintln(w, "\n--- Passenger & Tariff Conditions ---")
	for _, row := range d.Passengers {
		fmt.Fprintf(w, "%s  %s\n", row.Passenger, row.Route)
		printBlock(w, "Baggage", row.Baggage)
		printBlock(w, "Fare Details", row.FareDetails)
		printBlock(w, "Penalties", row.Penalties)
		fmt.Fprintln(w, rule)
	}
}

func printBlock(w io.Writer, title, text string) {
	fmt.Fprintf(w, "  %s:\n", title)
	for _, line := range strings.Split(text, "\n") {
		fmt.Fprintf(w, "    %s\n", line)
	}
}
