// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/fisioapp/clinic-service/internal/authorization"
	"github.com/fisioapp/clinic-service/internal/config"
	"github.com/fisioapp/clinic-service/internal/db"
	"github.com/fisioapp/clinic-service/internal/identity"
	"github.com/fisioapp/clinic-service/internal/kratos"
	"github.com/fisioapp/clinic-service/internal/logging"
	"github.com/fisioapp/clinic-service/internal/monitoring/prometheus"
	"github.com/fisioapp/clinic-service/internal/openfga"
	"github.com/fisioapp/clinic-service/internal/sms"
	"github.com/fisioapp/clinic-service/internal/storage"
	"github.com/fisioapp/clinic-service/internal/tracing"
	"github.com/fisioapp/clinic-service/pkg/accounts"
	"github.com/fisioapp/clinic-service/pkg/appointments"
	"github.com/fisioapp/clinic-service/pkg/assignments"
	"github.com/fisioapp/clinic-service/pkg/authentication"
	"github.com/fisioapp/clinic-service/pkg/clinics"
	"github.com/fisioapp/clinic-service/pkg/invitations"
	"github.com/fisioapp/clinic-service/pkg/metrics"
	"github.com/fisioapp/clinic-service/pkg/status"
	"github.com/fisioapp/clinic-service/pkg/therapy"
	"github.com/fisioapp/clinic-service/pkg/users"
	"github.com/fisioapp/clinic-service/pkg/web"
	"github.com/fisioapp/clinic-service/pkg/webhooks"
)

const serviceName = "clinic-service"

var envFile string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		main()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&envFile, "env-file", ".env", "Optional dotenv file loaded before the environment is read")
}

func serve() error {
	// a missing file is fine, the environment alone is enough
	_ = godotenv.Load(envFile)

	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor(serviceName, logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
		ApplicationName: serviceName,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	var fallback identity.ReaderInterface
	if specs.ElevatedDSN != "" {
		elevatedConfig := dbConfig
		elevatedConfig.DSN = specs.ElevatedDSN
		elevatedConfig.MaxConns = 2
		elevatedConfig.MinConns = 0
		elevatedConfig.ApplicationName = serviceName + "-elevated"

		elevatedClient, err := db.NewDBClient(elevatedConfig, tracer, monitor, logger)
		if err != nil {
			return fmt.Errorf("failed to create elevated database client: %v", err)
		}
		defer elevatedClient.Close()

		fallback = storage.NewStorage(elevatedClient, tracer, monitor, logger)
		logger.Info("Caller context fallback reader is enabled")
	}

	var authorizer *authorization.Authorizer
	if specs.AuthorizationEnabled {
		ofga := openfga.NewClient(
			openfga.NewConfig(
				specs.OpenfgaApiScheme,
				specs.OpenfgaApiHost,
				specs.OpenfgaStoreId,
				specs.OpenfgaApiToken,
				specs.OpenfgaModelId,
				specs.Debug,
				tracer,
				monitor,
				logger,
			),
		)
		authorizer = authorization.NewAuthorizer(
			ofga,
			tracer,
			monitor,
			logger,
		)
		logger.Info("Authorization is enabled")
		if authorizer.ValidateModel(context.Background()) != nil {
			panic("Invalid authorization model provided")
		}
	} else {
		authorizer = authorization.NewAuthorizer(
			openfga.NewNoopClient(tracer, monitor, logger),
			tracer,
			monitor,
			logger,
		)
		logger.Info("Using noop authorizer")
	}

	var notifier appointments.NotifierInterface
	if specs.TwilioEnabled {
		notifier = sms.NewTwilioNotifier(specs.TwilioAccountSID, specs.TwilioAuthToken, specs.TwilioFromNumber, tracer, monitor, logger)
		logger.Info("SMS notifications are enabled")
	} else {
		notifier = sms.NewNoopNotifier(logger)
	}

	kratosClient := kratos.NewClient(
		specs.KratosAdminURL,
		specs.KratosPublicURL,
		specs.KratosSchemaID,
		tracer,
		monitor,
		logger,
	)

	var verifier authentication.TokenVerifierInterface
	if specs.AuthenticationEnabled {
		verifier, err = authentication.NewJWTAuthenticator(
			context.Background(),
			specs.AuthenticationIssuer,
			specs.AuthenticationJwksURL,
			specs.AuthenticationAllowedSubjects,
			specs.AuthenticationRequiredScope,
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to create JWT authenticator: %v", err)
		}
		logger.Info("JWT authentication is enabled")
	} else {
		verifier = authentication.NewSessionTokenVerifier(kratosClient, tracer, monitor, logger)
		logger.Info("Using session token authentication")
	}

	authnMiddleware := authentication.NewMiddleware(verifier, kratosClient, specs.SessionCookieName, tracer, monitor, logger)
	resolver := identity.NewResolver(s, fallback, tracer, monitor, logger)
	identityMiddleware := identity.NewMiddleware(resolver, authentication.GetUserID, tracer, monitor, logger)

	clinicsAPI := clinics.NewAPI(clinics.NewService(s, specs.DefaultTimezone, tracer, monitor, logger), tracer, monitor, logger)
	usersAPI := users.NewAPI(users.NewService(s, kratosClient, authorizer, specs.InvitationLifetime, tracer, monitor, logger), tracer, monitor, logger)
	invitationsAPI := invitations.NewAPI(invitations.NewService(s, kratosClient, authorizer, tracer, monitor, logger), tracer, monitor, logger)
	assignmentsAPI := assignments.NewAPI(assignments.NewService(s, authorizer, tracer, monitor, logger), tracer, monitor, logger)
	appointmentsAPI := appointments.NewAPI(appointments.NewService(s, notifier, specs.DefaultTimezone, tracer, monitor, logger), tracer, monitor, logger)
	therapyAPI := therapy.NewAPI(therapy.NewService(s, authorizer, tracer, monitor, logger), tracer, monitor, logger)
	accountsAPI := accounts.NewAPI(accounts.NewService(kratosClient, tracer, monitor, logger), tracer, monitor, logger)
	statusAPI := status.NewAPI(status.NewService(kratosClient, s, tracer, monitor, logger), tracer, monitor, logger)
	webhooksAPI := webhooks.NewAPI(webhooks.NewService(resolver, tracer, monitor, logger), logger)
	metricsAPI := metrics.NewAPI(logger)

	router := web.NewRouter(
		web.Config{
			CORSAllowedOrigins: specs.CORSAllowedOrigins,
			Public: []web.RegisterFunc{
				statusAPI.RegisterEndpoints,
				metricsAPI.RegisterEndpoints,
				invitationsAPI.RegisterPublicEndpoints,
				webhooksAPI.RegisterEndpoints,
			},
			Protected: []web.RegisterFunc{
				accountsAPI.RegisterEndpoints,
				usersAPI.RegisterEndpoints,
				clinicsAPI.RegisterEndpoints,
				invitationsAPI.RegisterEndpoints,
				assignmentsAPI.RegisterEndpoints,
				appointmentsAPI.RegisterEndpoints,
				therapyAPI.RegisterEndpoints,
				statusAPI.RegisterAdminEndpoints,
			},
			Authenticate: authnMiddleware.Authenticate(),
			Resolve:      identityMiddleware.Resolve(),
		},
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}

func main() {
	if err := serve(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}
