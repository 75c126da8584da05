package cli

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/apigw-lambda/internal/credentials"
	"github.com/raywall/apigw-lambda/pkg/types"
)

func TestRenderCreateResultText(t *testing.T) {
	var buf bytes.Buffer
	err := renderCreateResult(&buf, "text", &types.CreateResult{
		APIID:        "abc123",
		APIName:      "orders-api",
		FunctionName: "orders",
		InvokeURL:    "https://abc123.execute-api.us-east-1.amazonaws.com/prod/orders",
		DeploymentID: "dep1",
		Stage:        "prod",
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "API ID:        abc123")
	assert.Contains(t, out, "Invoke URL:    https://abc123.execute-api.us-east-1.amazonaws.com/prod/orders")
	assert.NotContains(t, out, "Log Group")
}

func TestRenderCreateResultTextWithLogGroup(t *testing.T) {
	var buf bytes.Buffer
	err := renderCreateResult(&buf, "text", &types.CreateResult{
		APIID:    "abc123",
		LogGroup: "API-Gateway-Execution-Logs_abc123/prod",
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "API-Gateway-Execution-Logs_abc123/prod")
}

func TestRenderCreateResultJSON(t *testing.T) {
	var buf bytes.Buffer
	err := renderCreateResult(&buf, "json", &types.CreateResult{
		APIID:        "abc123",
		APIName:      "orders-api",
		FunctionName: "orders",
		Stage:        "prod",
	})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "abc123", decoded["api_id"])
	assert.Equal(t, "orders", decoded["lambda_name"])
}

func TestRenderAPIListText(t *testing.T) {
	apis := []types.APISummary{
		{ID: "abc123", Name: "orders-api", Protocol: "REST"},
		{ID: "def456", Name: "billing-api", Protocol: "HTTP"},
	}

	var buf bytes.Buffer
	require.NoError(t, renderAPIList(&buf, "text", apis))

	out := buf.String()
	assert.Contains(t, out, "Found 2 API(s):")
	assert.Contains(t, out, "abc123")
	assert.Contains(t, out, "billing-api")
}

func TestRenderAPIListTextEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderAPIList(&buf, "text", nil))
	assert.Contains(t, buf.String(), "No APIs found")
}

func TestRenderAPIListJSON(t *testing.T) {
	apis := []types.APISummary{{ID: "abc123", Name: "orders-api", Protocol: "REST"}}

	var buf bytes.Buffer
	require.NoError(t, renderAPIList(&buf, "json", apis))

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "abc123", decoded[0]["id"])
}

func TestRenderAPIDetailsText(t *testing.T) {
	details := &types.APIDetails{
		APISummary: types.APISummary{
			ID:          "abc123",
			Name:        "orders-api",
			Description: "orders backend",
			Protocol:    "REST",
			CreatedDate: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		},
		EndpointTypes: []string{"REGIONAL"},
		Stages: []types.StageInfo{
			{Name: "prod", DeploymentID: "dep1"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, renderAPIDetails(&buf, "text", details))

	out := buf.String()
	assert.Contains(t, out, "orders backend")
	assert.Contains(t, out, "2024-03-01 10:00:00")
	assert.Contains(t, out, "prod (deployment dep1)")
}

func TestRenderInvokeResultText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderInvokeResult(&buf, "text", &types.InvokeResult{
		StatusCode: 200,
		Body:       `{"ok": true}`,
		LatencyMS:  42,
	}))

	out := buf.String()
	assert.Contains(t, out, "Status:  200")
	assert.Contains(t, out, "Latency: 42ms")
	assert.Contains(t, out, `{"ok": true}`)
}

func TestRenderProfilesText(t *testing.T) {
	profiles := []credentials.Profile{
		{Name: "default", Region: "us-east-1"},
		{Name: "staging"},
	}

	var buf bytes.Buffer
	require.NoError(t, renderProfiles(&buf, "text", profiles))

	out := buf.String()
	assert.Contains(t, out, "Found 2 profile(s):")
	assert.Contains(t, out, "default (us-east-1)")
	assert.Contains(t, out, "staging")
}

func TestRenderProfilesTextEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderProfiles(&buf, "text", nil))
	assert.Contains(t, buf.String(), "No AWS profiles found")
}

func TestRenderProfileInfoJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderProfileInfo(&buf, "json", types.ProfileInfo{
		Profile:   "dev",
		AccountID: "123456789012",
		UserID:    "AIDAEXAMPLE",
		Arn:       "arn:aws:iam::123456789012:user/dev",
		Region:    "us-east-1",
	}))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "123456789012", decoded["account_id"])
	assert.Equal(t, "dev", decoded["profile"])
}
