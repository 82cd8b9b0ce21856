// Package fixture holds a small shopping document shared by the tests of
// several packages. Only _test.go files import it; it cannot itself be a
// _test.go file because those are not importable across packages.
package fixture

import (
	"encoding/json"

	"github.com/dharmasatrya/offerresolver/internal/models"
)

// SampleJSON describes two itinerary groups:
//
//	group 0: LAX -> JFK / JFK -> LAX round trip
//	  itinerary 1: AA100 + AA101, pricing entries OFFER-A, synthetic P1, and one without fare
//	  itinerary 2: UA200/UA201 + UA300, pricing entry OFFER-B
//	group 1: LAX -> JFK one way
//	  itinerary 3: a leg whose only schedule is missing, one synthetic entry without total fare
const SampleJSON = `{
  "groupedItineraryResponse": {
    "version": "6.1.0",
    "statistics": {"itineraryCount": 3},
    "scheduleDescs": [
      {"id": 1, "departure": {"airport": "LAX", "time": "08:00:00-07:00"}, "arrival": {"airport": "JFK", "time": "16:25:00-04:00"}, "carrier": {"marketing": "AA", "marketingFlightNumber": 100}},
      {"id": 2, "departure": {"airport": "JFK", "time": "17:30:00-04:00"}, "arrival": {"airport": "LAX", "time": "20:55:00-07:00"}, "carrier": {"marketing": "AA", "marketingFlightNumber": 101}},
      {"id": 3, "departure": {"airport": "LAX", "time": "06:15:00-07:00"}, "arrival": {"airport": "ORD", "time": "12:20:00-05:00"}, "carrier": {"marketing": "UA", "marketingFlightNumber": 200}},
      {"id": 4, "departure": {"airport": "ORD", "time": "13:40:00-05:00"}, "arrival": {"airport": "JFK", "time": "16:55:00-04:00"}, "carrier": {"marketing": "UA", "marketingFlightNumber": 201}},
      {"id": 5, "departure": {"airport": "JFK", "time": "09:05:00-04:00"}, "arrival": {"airport": "LAX", "time": "12:30:00-07:00"}, "carrier": {"marketing": "UA", "marketingFlightNumber": 300}}
    ],
    "legDescs": [
      {"id": 10, "schedules": [{"ref": 1}]},
      {"id": 11, "schedules": [{"ref": 2}]},
      {"id": 12, "schedules": [{"ref": 3}, {"ref": 4}]},
      {"id": 13, "schedules": [{"ref": 5}]},
      {"id": 14, "schedules": [{"ref": 77}]}
    ],
    "fareComponentDescs": [
      {"id": 100, "fareBasisCode": "Y1", "brand": {"code": "EC", "brandName": "Economy Classic", "priceClassDescriptionRef": 500}},
      {"id": 101, "fareBasisCode": "Y2"},
      {"id": 102, "fareBasisCode": "QLOW", "brand": {"code": "BL", "brandName": "Basic Light"}},
      {"id": 103, "fareBasisCode": "QLOW", "brand": {"code": "BL", "brandName": "Basic Light"}}
    ],
    "baggageAllowanceDescs": [
      {"id": 200, "pieceCount": 1},
      {"id": 201, "pieceCount": 1, "weight": 23, "unit": "kg", "description1": "UP TO 50 POUNDS/23 KILOGRAMS"}
    ],
    "baggageChargeDescs": [
      {"id": 300, "equivalentAmount": 35, "equivalentCurrency": "USD", "description1": "UP TO 50 POUNDS", "description2": "UP TO 62 LINEAR INCHES"}
    ],
    "priceClassDescriptions": [
      {"id": 500, "descriptions": [{"text": "Seat selection"}, {"text": "Checked bag included"}]}
    ],
    "itineraryGroups": [
      {
        "groupDescription": {"legDescriptions": [
          {"departureDate": "2026-05-01", "departureLocation": "LAX", "arrivalLocation": "JFK"},
          {"departureDate": "2026-05-08", "departureLocation": "JFK", "arrivalLocation": "LAX"}
        ]},
        "itineraries": [
          {
            "id": 1,
            "legs": [{"ref": 10}, {"ref": 11}],
            "pricingInformation": [
              {
                "offer": {"offerId": "OFFER-A"},
                "fare": {
                  "validatingCarrierCode": "AA",
                  "totalFare": {"totalPrice": 450.5, "totalTaxAmount": 70.5, "currency": "USD", "baseFareAmount": 380, "baseFareCurrency": "USD"},
                  "passengerInfoList": [{"passengerInfo": {
                    "passengerType": "ADT",
                    "passengerNumber": 2,
                    "passengers": [{"id": 1}, {"id": 2}],
                    "fareComponents": [
                      {"ref": 100, "beginAirport": "LAX", "endAirport": "JFK", "segments": [{"segment": {"bookingCode": "Y", "cabinCode": "Y"}}], "applicablePenalties": {"penalties": [{"id": 1}]}},
                      {"ref": 101, "beginAirport": "JFK", "endAirport": "LAX", "segments": [{"segment": {"bookingCode": "B", "cabinCode": "Y"}}]}
                    ],
                    "penaltiesInfo": {"penalties": [
                      {"id": 1, "type": "Exchange", "applicability": "Before", "changeable": true, "amount": 75, "currency": "USD"},
                      {"id": 2, "type": "Refund", "applicability": "Before", "refundable": false}
                    ]},
                    "baggageInformation": [
                      {"provisionType": "A", "segments": [{"id": 0}], "allowance": {"ref": 201}},
                      {"provisionType": "C", "segments": [{"id": 2}], "allowance": {"ref": 200}},
                      {"provisionType": "P", "segments": [{"id": 5}], "charge": {"ref": 300}}
                    ]
                  }}]
                }
              },
              {
                "fare": {
                  "validatingCarrierCode": "AA",
                  "totalFare": {"totalPrice": 520, "totalTaxAmount": 80, "currency": "USD", "baseFareAmount": 440, "baseFareCurrency": "USD"},
                  "passengerInfoList": [{"passengerInfo": {
                    "passengerType": "ADT",
                    "passengers": [{"id": 1}],
                    "fareComponents": [
                      {"ref": 102, "beginAirport": "LAX", "endAirport": "JFK", "segments": [{"segment": {"bookingCode": "Q", "cabinCode": "Y"}}]}
                    ],
                    "penaltiesInfo": {"penalties": [
                      {"id": 7, "type": "Exchange", "changeable": false},
                      {"id": 8, "type": "Refund", "applicability": "After", "refundable": true}
                    ]}
                  }}]
                }
              },
              {"offer": {"offerId": "OFFER-NOFARE"}}
            ]
          },
          {
            "id": 2,
            "legs": [{"ref": 12}, {"ref": 13}],
            "pricingInformation": [
              {
                "offer": {"offerId": "OFFER-B"},
                "fare": {
                  "validatingCarrierCode": "UA",
                  "totalFare": {"totalPrice": 389, "totalTaxAmount": 61, "currency": "USD", "baseFareAmount": 328, "baseFareCurrency": "USD"},
                  "passengerInfoList": [{"passengerInfo": {
                    "passengerType": "ADT",
                    "passengers": [{"id": 1}],
                    "fareComponents": [
                      {"ref": 103, "beginAirport": "LAX", "endAirport": "JFK", "segments": [{"segment": {"bookingCode": "Q", "cabinCode": "Y"}}, {"segment": {"bookingCode": "Q", "cabinCode": "Y"}}]}
                    ]
                  }}]
                }
              }
            ]
          }
        ]
      },
      {
        "groupDescription": {"legDescriptions": [
          {"departureDate": "2026-05-02", "departureLocation": "LAX", "arrivalLocation": "JFK"}
        ]},
        "itineraries": [
          {
            "id": 3,
            "legs": [{"ref": 14}],
            "pricingInformation": [
              {"fare": {"passengerInfoList": [{"passengerInfo": {"passengerType": "CNN", "fareComponents": [{"ref": 999, "beginAirport": "LAX", "endAirport": "JFK"}]}}]}}
            ]
          }
        ]
      }
    ]
  }
}`

// Sample decodes SampleJSON. It panics on error since the input is a
// constant.
func Sample() *models.Document {
	var doc models.Document
	if err := json.Unmarshal([]byte(SampleJSON), &doc); err != nil {
		panic(err)
	}
	return &doc
}
