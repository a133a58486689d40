// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/openfga/go-sdk/client"
	"github.com/spf13/cobra"
	corev1 "k8s.io/api/core/v1"
	k8serrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/fisioapp/clinic-service/internal/authorization"
	"github.com/fisioapp/clinic-service/internal/logging"
	"github.com/fisioapp/clinic-service/internal/monitoring"
	"github.com/fisioapp/clinic-service/internal/openfga"
	"github.com/fisioapp/clinic-service/internal/tracing"
)

const StoreName = "clinic-service"

// configmap keys match the variables read by serve
const (
	configMapStoreKey = "OPENFGA_STORE_ID"
	configMapModelKey = "OPENFGA_AUTHORIZATION_MODEL_ID"
)

type fgaBootstrap struct {
	StoreID      string `json:"store_id"`
	ModelID      string `json:"model_id"`
	StoreCreated bool   `json:"store_created"`
	ModelWritten bool   `json:"model_written"`
}

var createFgaModelCmd = &cobra.Command{
	Use:   "create-fga-model",
	Short: "Creates the clinic authorization model in openfga",
	Long: `Creates the clinic authorization model in openfga.

A store is created when --fga-store-id is empty. When --fga-model-id points to a model
identical to the embedded one no new model is written.`,
	Run: func(cmd *cobra.Command, args []string) {
		apiUrl, _ := cmd.Flags().GetString("fga-api-url")
		apiToken, _ := cmd.Flags().GetString("fga-api-token")
		storeId, _ := cmd.Flags().GetString("fga-store-id")
		modelId, _ := cmd.Flags().GetString("fga-model-id")
		format, _ := cmd.Flags().GetString("format")
		verbose, _ := cmd.Flags().GetBool("verbose")
		configMapResource, _ := cmd.Flags().GetString("store-k8s-configmap-resource")
		kubeconfigPath, _ := cmd.Flags().GetString("kubeconfig")

		result, err := bootstrapModel(cmd.Context(), apiUrl, apiToken, storeId, modelId, verbose)
		if err != nil {
			cmd.PrintErrln(err)
			os.Exit(1)
		}

		if configMapResource != "" {
			if err := updateConfigMap(cmd.Context(), kubeconfigPath, configMapResource, result); err != nil {
				cmd.PrintErrln(fmt.Errorf("failed to update configmap: %w", err))
				os.Exit(1)
			}
			cmd.Printf("ConfigMap %s updated successfully\n", configMapResource)
		}

		if format == "json" {
			if err := json.NewEncoder(cmd.OutOrStdout()).Encode(result); err != nil {
				cmd.PrintErrln(fmt.Errorf("failed to encode output: %v", err))
				os.Exit(1)
			}
			return
		}

		if result.StoreCreated {
			cmd.Printf("Created store: %s\n", result.StoreID)
		}
		if result.ModelWritten {
			cmd.Printf("Created model: %s\n", result.ModelID)
		} else {
			cmd.Printf("Model %s is up to date\n", result.ModelID)
		}
	},
}

func init() {
	rootCmd.AddCommand(createFgaModelCmd)

	createFgaModelCmd.Flags().String("fga-api-url", "", "The openfga API URL")
	createFgaModelCmd.Flags().String("fga-api-token", "", "The openfga API token")
	createFgaModelCmd.Flags().String("fga-store-id", "", "The openfga store to create the model in, if empty one will be created")
	createFgaModelCmd.Flags().String("fga-model-id", "", "The model currently in use, a new model is written only if it differs")
	createFgaModelCmd.Flags().String("format", "text", "Output format (text or json)")
	createFgaModelCmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging")
	createFgaModelCmd.Flags().String("store-k8s-configmap-resource", "", "The configmap resource to store the FGA Store ID and Model ID, format: namespace/name")
	createFgaModelCmd.Flags().String("kubeconfig", "", "Path to the kubeconfig file (optional, defaults to in-cluster config)")
	createFgaModelCmd.MarkFlagRequired("fga-api-url")
	createFgaModelCmd.MarkFlagRequired("fga-api-token")
}

func bootstrapModel(ctx context.Context, apiUrl, apiToken, storeId, modelId string, verbose bool) (*fgaBootstrap, error) {
	logger := logging.NewNoopLogger()
	if verbose {
		logger = logging.NewLogger("debug")
	}
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor(StoreName, logger)

	scheme, host, err := parseURL(apiUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to parse url: %w", err)
	}

	// the model id is only known once the model is written, build the config by hand
	// to skip the validation done by openfga.NewConfig
	cfg := openfga.Config{
		ApiScheme:   scheme,
		ApiHost:     host,
		StoreID:     storeId,
		ApiToken:    apiToken,
		AuthModelID: modelId,
		Debug:       verbose,
		Tracer:      tracer,
		Monitor:     monitor,
		Logger:      logger,
	}

	fgaClient := openfga.NewClient(&cfg)
	result := &fgaBootstrap{StoreID: storeId, ModelID: modelId}

	if result.StoreID == "" {
		if result.StoreID, err = fgaClient.CreateStore(ctx, StoreName); err != nil {
			return nil, fmt.Errorf("failed to create store: %w", err)
		}
		result.StoreCreated = true
		fgaClient.SetStoreID(ctx, result.StoreID)
	}

	authzModel := authorization.NewAuthorizationModelProvider("v0").GetModel()

	if !result.StoreCreated && modelId != "" {
		equal, err := fgaClient.CompareModel(ctx, *authzModel)
		if err != nil {
			return nil, fmt.Errorf("failed to read model %s: %w", modelId, err)
		}
		if equal {
			return result, nil
		}
		logger.Infof("model %s differs from the embedded schema, writing a new one", modelId)
	}

	result.ModelID, err = fgaClient.WriteModel(
		ctx,
		&client.ClientWriteAuthorizationModelRequest{
			TypeDefinitions: authzModel.TypeDefinitions,
			SchemaVersion:   authzModel.SchemaVersion,
			Conditions:      authzModel.Conditions,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to write model: %w", err)
	}
	result.ModelWritten = true

	return result, nil
}

func parseURL(s string) (string, string, error) {
	u, err := url.Parse(s)
	if err != nil {
		return "", "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", "", fmt.Errorf("expected scheme://host, got %q", s)
	}
	return u.Scheme, u.Host, nil
}

func kubeConfig(kubeconfigPath string) (*rest.Config, error) {
	if kubeconfigPath != "" {
		return clientcmd.BuildConfigFromFlags("", kubeconfigPath)
	}

	config, err := rest.InClusterConfig()
	if err == nil {
		return config, nil
	}

	// running outside a cluster without --kubeconfig
	loadingRules := clientcmd.NewDefaultClientConfigLoadingRules()
	return clientcmd.NewNonInteractiveDeferredLoadingClientConfig(loadingRules, &clientcmd.ConfigOverrides{}).ClientConfig()
}

func updateConfigMap(ctx context.Context, kubeconfigPath, configMapResource string, result *fgaBootstrap) error {
	namespace, name, ok := strings.Cut(configMapResource, "/")
	if !ok || namespace == "" || name == "" || strings.Contains(name, "/") {
		return fmt.Errorf("invalid configmap resource format: %s, expected namespace/name", configMapResource)
	}

	config, err := kubeConfig(kubeconfigPath)
	if err != nil {
		return fmt.Errorf("failed to load kubeconfig: %w", err)
	}

	clientset, err := kubernetes.NewForConfig(config)
	if err != nil {
		return fmt.Errorf("failed to create kubernetes client: %w", err)
	}

	configMaps := clientset.CoreV1().ConfigMaps(namespace)
	data := map[string]string{
		configMapStoreKey: result.StoreID,
		configMapModelKey: result.ModelID,
	}

	cm, err := configMaps.Get(ctx, name, metav1.GetOptions{})
	if k8serrors.IsNotFound(err) {
		cm = &corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{
				Name:      name,
				Namespace: namespace,
				Labels:    map[string]string{"app.kubernetes.io/name": StoreName},
			},
			Data: data,
		}
		if _, err := configMaps.Create(ctx, cm, metav1.CreateOptions{}); err != nil {
			return fmt.Errorf("failed to create configmap %s: %w", configMapResource, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get configmap %s: %w", configMapResource, err)
	}

	if cm.Data == nil {
		cm.Data = make(map[string]string)
	}
	for k, v := range data {
		cm.Data[k] = v
	}

	if _, err := configMaps.Update(ctx, cm, metav1.UpdateOptions{}); err != nil {
		return fmt.Errorf("failed to update configmap %s: %w", configMapResource, err)
	}

	return nil
}
