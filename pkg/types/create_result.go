package types

// CreateResult stores everything provisioned by a successful create-api run.
type CreateResult struct {
	APIID        string `json:"api_id"`
	APIName      string `json:"api_name"`
	FunctionName string `json:"lambda_name"`
	FunctionArn  string `json:"lambda_arn"`
	InvokeURL    string `json:"invoke_url"`
	DeploymentID string `json:"deployment_id"`
	Stage        string `json:"stage"`
	LogGroup     string `json:"log_group,omitempty"`
}
