package steps

import (
	"time"
)

func (fc *FeatureContext) waitForDuration(duration string) error {
	d, err := time.ParseDuration(duration)
	if err != nil {
		return err
	}

	time.Sleep(d)
	return nil
}

func (fc *FeatureContext) theResponseStatusCodeShouldBe(code int) error {
	fc.require.Equal(code, fc.response.StatusCode, "Unexpected status code: %s", string(fc.body))
	return nil
}

func (fc *FeatureContext) theErrorShouldNameTheField(field string) error {
	var data map[string]any
	fc.require.NoError(fc.decodeBody(&data))
	fc.require.Equal(field, data["field"], "Unexpected error field")
	return nil
}
