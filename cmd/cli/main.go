package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"medibook-client/internal/app/config"
	"medibook-client/internal/app/contracts"
	"medibook-client/internal/app/drivers/database"
	"medibook-client/internal/app/drivers/logger"
	"medibook-client/internal/app/models"
	"medibook-client/internal/app/services/auth"
	"medibook-client/internal/app/services/gateway"
	"medibook-client/internal/app/services/profiles"
	"medibook-client/internal/app/services/sessions"
	"medibook-client/internal/pkg/constvars"
	"medibook-client/internal/pkg/dto/requests"
	"medibook-client/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	log := logger.NewZapLogger(driverConfig, internalConfig)

	bootstrap := &config.Bootstrap{
		Logger:         log,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	defer bootstrap.Shutdown()

	var store contracts.SessionStore
	switch internalConfig.Session.Backend {
	case constvars.SessionBackendRedis:
		bootstrap.Redis = database.NewRedisClient(driverConfig)
		store = sessions.NewRedisSessionStore(bootstrap.Redis)
	default:
		store = sessions.NewFileSessionStore(internalConfig.Session.FilePath, log)
	}
	log.Debug("session store selected", zap.String(constvars.LoggingBackendKey, internalConfig.Session.Backend))

	authGateway := gateway.NewAuthGateway(
		internalConfig.API.BaseUrl,
		time.Duration(internalConfig.API.TimeoutInSeconds)*time.Second,
		log,
	)

	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, uuid.New().String())
	ctx, cancel := context.WithTimeout(ctx, time.Duration(internalConfig.API.TimeoutInSeconds+5)*time.Second)
	defer cancel()

	manager, err := auth.NewSessionManager(ctx, authGateway, store, nil, log)
	if err != nil {
		logrus.Fatalf("Failed to restore session: %v", err)
	}
	synchronizer := profiles.NewProfileSynchronizer(authGateway, manager, log)

	if err := run(ctx, os.Args[1], os.Args[2:], manager, synchronizer); err != nil {
		fmt.Fprintln(os.Stderr, clientMessage(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, command string, args []string, manager contracts.SessionManager, synchronizer contracts.ProfileSynchronizer) error {
	switch command {
	case "login":
		return runLogin(ctx, args, manager)
	case "login-identity":
		return runLoginIdentity(ctx, args, manager)
	case "signup-patient":
		return runSignupPatient(ctx, args, manager)
	case "signup-doctor":
		return runSignupDoctor(ctx, args, manager)
	case "logout":
		return manager.Logout(ctx)
	case "whoami":
		return runWhoami(manager)
	case "profile":
		return runProfile(ctx, synchronizer)
	case "save-profile":
		return runSaveProfile(ctx, args, synchronizer)
	case "working-hours":
		return runWorkingHours(ctx, args, synchronizer)
	case "specialties":
		return runSpecialties()
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func runLogin(ctx context.Context, args []string, manager contracts.SessionManager) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(args)

	info, err := manager.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	fmt.Printf("Logged in as %s (%s)\n", *email, info.AccountKind)
	return nil
}

func runLoginIdentity(ctx context.Context, args []string, manager contracts.SessionManager) error {
	fs := flag.NewFlagSet("login-identity", flag.ExitOnError)
	token := fs.String("token", "", "identity-provider ID token")
	fs.Parse(args)

	info, err := manager.LoginWithIdentity(ctx, *token)
	if err != nil {
		return err
	}
	fmt.Printf("Logged in via identity provider (%s)\n", info.AccountKind)
	return nil
}

func runSignupPatient(ctx context.Context, args []string, manager contracts.SessionManager) error {
	fs := flag.NewFlagSet("signup-patient", flag.ExitOnError)
	request := &requests.SignupPatient{}
	var address, phone string
	fs.StringVar(&request.FirstName, "first-name", "", "first name")
	fs.StringVar(&request.LastName, "last-name", "", "last name")
	fs.StringVar(&request.Email, "email", "", "email")
	fs.StringVar(&request.Password, "password", "", "password")
	fs.StringVar(&request.RetypePassword, "retype-password", "", "password confirmation")
	fs.StringVar(&address, "address", "", "address (optional)")
	fs.StringVar(&phone, "phone", "", "phone (optional)")
	fs.Parse(args)
	request.Address = optionalFlag(address)
	request.Phone = optionalFlag(phone)

	if err := manager.SignupPatient(ctx, request); err != nil {
		return err
	}
	fmt.Println("Patient account created, you can now log in")
	return nil
}

func runSignupDoctor(ctx context.Context, args []string, manager contracts.SessionManager) error {
	fs := flag.NewFlagSet("signup-doctor", flag.ExitOnError)
	request := &requests.SignupDoctor{}
	var phone, contactEmail, contactPhone string
	fs.StringVar(&request.FirstName, "first-name", "", "first name")
	fs.StringVar(&request.LastName, "last-name", "", "last name")
	fs.StringVar(&request.Email, "email", "", "email")
	fs.StringVar(&request.Password, "password", "", "password")
	fs.StringVar(&request.RetypePassword, "retype-password", "", "password confirmation")
	fs.StringVar(&request.Address, "address", "", "clinic address")
	fs.IntVar(&request.SpecialtyID, "specialty", 0, "specialty id, see the specialties command")
	fs.StringVar(&phone, "phone", "", "phone (optional)")
	fs.StringVar(&contactEmail, "contact-email", "", "public contact email (optional)")
	fs.StringVar(&contactPhone, "contact-phone", "", "public contact phone (optional)")
	fs.Parse(args)
	request.Phone = optionalFlag(phone)
	request.ContactEmail = optionalFlag(contactEmail)
	request.ContactPhone = optionalFlag(contactPhone)

	if _, ok := models.SpecialtyByID(request.SpecialtyID); !ok {
		return fmt.Errorf("unknown specialty %d, see the specialties command", request.SpecialtyID)
	}
	if err := manager.SignupDoctor(ctx, request); err != nil {
		return err
	}
	fmt.Println("Doctor account created, you can now log in")
	return nil
}

func runWhoami(manager contracts.SessionManager) error {
	snapshot := manager.Snapshot()
	if !snapshot.LoggedIn {
		fmt.Println("Not logged in")
		return nil
	}
	first, last := manager.CachedNames()
	fmt.Printf("Logged in as %s (%s)", manager.Email(), snapshot.AccountKind)
	if first != "" || last != "" {
		fmt.Printf(", %s %s", first, last)
	}
	fmt.Println()
	return nil
}

func runProfile(ctx context.Context, synchronizer contracts.ProfileSynchronizer) error {
	profile, err := synchronizer.FetchCurrentProfile(ctx)
	if err != nil {
		return err
	}
	if profile == nil {
		fmt.Println("No profile available")
		return nil
	}
	var doc interface{} = profile.Patient
	if profile.Kind == models.AccountKindDoctor {
		doc = profile.Doctor
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// runSaveProfile re-fetches the current profile, applies the provided field
// flags on top, and commits the whole document.
func runSaveProfile(ctx context.Context, args []string, synchronizer contracts.ProfileSynchronizer) error {
	profile, err := synchronizer.FetchCurrentProfile(ctx)
	if err != nil {
		return err
	}
	if profile == nil {
		return fmt.Errorf("no profile available to edit")
	}

	fs := flag.NewFlagSet("save-profile", flag.ExitOnError)
	firstName := fs.String("first-name", "", "first name")
	lastName := fs.String("last-name", "", "last name")
	address := fs.String("address", "", "address")
	phone := fs.String("phone", "", "phone")
	contactEmail := fs.String("contact-email", "", "public contact email (doctor)")
	contactPhone := fs.String("contact-phone", "", "public contact phone (doctor)")
	morning := fs.String("morning", "", "morning shift as start-end, e.g. 08:00-12:00 (doctor)")
	evening := fs.String("evening", "", "evening shift as start-end, e.g. 14:00-18:00 (doctor)")
	fs.Parse(args)

	switch profile.Kind {
	case models.AccountKindDoctor:
		doctor := profile.Doctor
		applyIfSet(&doctor.FirstName, *firstName)
		applyIfSet(&doctor.LastName, *lastName)
		applyIfSet(&doctor.Address, *address)
		applyIfSet(&doctor.Phone, *phone)
		applyIfSet(&doctor.ContactEmail, *contactEmail)
		applyIfSet(&doctor.ContactPhone, *contactPhone)
		if err := applyShift(&doctor.WorkingHours.Morning, *morning); err != nil {
			return err
		}
		if err := applyShift(&doctor.WorkingHours.Evening, *evening); err != nil {
			return err
		}
	default:
		patient := profile.Patient
		applyIfSet(&patient.FirstName, *firstName)
		applyIfSet(&patient.LastName, *lastName)
		applyIfSet(&patient.Address, *address)
		applyIfSet(&patient.Phone, *phone)
	}

	if !synchronizer.SaveProfile(ctx, profile) {
		return fmt.Errorf("profile save failed")
	}
	fmt.Println("Profile saved")
	return nil
}

func runWorkingHours(ctx context.Context, args []string, synchronizer contracts.ProfileSynchronizer) error {
	fs := flag.NewFlagSet("working-hours", flag.ExitOnError)
	doctorID := fs.Int("doctor-id", 0, "doctor id")
	fs.Parse(args)

	hours, err := synchronizer.DoctorWorkingHours(ctx, *doctorID)
	if err != nil {
		return err
	}
	fmt.Printf("Morning: %s - %s\n", hours.Morning.Start, hours.Morning.End)
	fmt.Printf("Evening: %s - %s\n", hours.Evening.Start, hours.Evening.End)
	return nil
}

func runSpecialties() error {
	for _, specialty := range models.Specialties() {
		fmt.Printf("%2d  %s\n", specialty.ID, specialty.Label)
	}
	return nil
}

func applyIfSet(target *string, value string) {
	if value != "" {
		*target = value
	}
}

func applyShift(shift *models.Shift, value string) error {
	if value == "" {
		return nil
	}
	start, end, ok := strings.Cut(value, "-")
	if !ok || start == "" || end == "" {
		return fmt.Errorf("invalid shift %q, expected start-end like 08:00-12:00", value)
	}
	shift.Start = start
	shift.End = end
	return nil
}

func optionalFlag(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func clientMessage(err error) string {
	var customError *exceptions.CustomError
	if errors.As(err, &customError) {
		return customError.ClientMessage
	}
	return err.Error()
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: medibook <command> [flags]

Commands:
  login            -email -password
  login-identity   -token
  signup-patient   -first-name -last-name -email -password -retype-password [-address -phone]
  signup-doctor    -first-name -last-name -email -password -retype-password -address -specialty [...]
  logout
  whoami
  profile
  save-profile     [-first-name -last-name -address -phone ...]
  working-hours    -doctor-id
  specialties`)
}
