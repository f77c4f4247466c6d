// Package secretsrc fetches secrets (webhook URLs, bucket credentials) from
// Google Secret Manager, adapted from the project's earlier getSecret
// helper.
package secretsrc

import (
	"context"
	"fmt"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"google.golang.org/api/option"
)

// Get retrieves the latest payload of the named secret
// ("projects/.../secrets/.../versions/latest"). credentialsFile may be
// empty to use application-default credentials.
func Get(ctx context.Context, secretName, credentialsFile string) (string, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := secretmanager.NewClient(ctx, opts...)
	if err != nil {
		return "", fmt.Errorf("secretsrc: create client: %w", err)
	}
	defer client.Close()

	result, err := client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: secretName,
	})
	if err != nil {
		return "", fmt.Errorf("secretsrc: access %s: %w", secretName, err)
	}

	return string(result.Payload.GetData()), nil
}
