package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/aikidobw/seminar-api/internal/config"
	"github.com/aikidobw/seminar-api/internal/constants"
	"github.com/aikidobw/seminar-api/internal/helpers"
	"github.com/aikidobw/seminar-api/internal/logger"
	"github.com/aikidobw/seminar-api/internal/seed"
	"github.com/aikidobw/seminar-api/internal/services"
	"github.com/joho/godotenv"
)

// feequote prints the potential fees of a course pricing context from the
// embedded fee schedule, composed for a payment method and membership.
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v\n", err)
	}

	settings := config.Load()
	logger.InitLogger(settings.Stage)

	courseTypeFlag := flag.String("course-type", string(constants.CourseTypeExternalTeacher), "course type to quote")
	feeCategoryFlag := flag.String("fee-category", string(constants.FeeCategoryRegular), "fee category to quote")
	methodFlag := flag.String("payment-method", string(constants.PaymentMethodBank), "payment method (bank|cash)")
	memberFlag := flag.Bool("dan-member", false, "quote as DAN member")
	flag.Parse()

	courseType, ok := constants.ParseCourseType(*courseTypeFlag)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown course type %q\n", *courseTypeFlag)
		os.Exit(1)
	}
	feeCategory, ok := constants.ParseFeeCategory(*feeCategoryFlag)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown fee category %q\n", *feeCategoryFlag)
		os.Exit(1)
	}
	method, ok := constants.ParsePaymentMethod(*methodFlag)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown payment method %q\n", *methodFlag)
		os.Exit(1)
	}

	entries, err := seed.DefaultFeeSchedule()
	if err != nil {
		log.Fatalf("Failed to load fee schedule: %v", err)
	}
	feeTable, err := services.NewFeeTableService(entries)
	if err != nil {
		log.Fatalf("Failed to build fee table: %v", err)
	}

	fmt.Printf("%s / %s (%s, DAN member: %v)\n",
		courseType.Label(), feeCategory.Label(), method.Label(), *memberFlag)
	for _, feeType := range constants.FeeTypesForCategory(feeCategory) {
		cents := feeTable.GetFee(courseType, feeCategory, feeType, method, *memberFlag, 0)
		fmt.Printf("  %-38s %8s EUR\n", feeType.Label(), helpers.FormatAmount(cents))
	}
}
