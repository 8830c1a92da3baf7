package accounts

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

var (
	errVerificationFailed = fmt.Errorf("credential verification failed")
)

// Verifier - credential checks against the account service. Registration,
// OTP flows and roles are owned by that service; this client only asks
// whether a credential is valid.
type Verifier interface {
	Verify(accountNumber, credential string) error
}

type verifier struct {
	url        string
	httpClient *http.Client
}

// New - new Verifier for the account service at url
func New(url string, httpClient *http.Client) Verifier {
	return &verifier{
		url:        url,
		httpClient: httpClient,
	}
}

func (v *verifier) Verify(accountNumber, credential string) error {
	body, err := json.Marshal(map[string]string{
		"account_number": accountNumber,
		"credential":     credential,
	})
	if err != nil {
		return err
	}

	resp, err := v.httpClient.Post(v.url+"/v1/verify", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errVerificationFailed
	}

	return nil
}
