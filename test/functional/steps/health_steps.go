package steps

func (fc *FeatureContext) iCallTheHealthzEndpoint() error {
	return fc.capture(fc.apiDriver.GetHealthz())
}

func (fc *FeatureContext) theResponseShouldContainStatusInformation() error {
	var data map[string]any
	fc.require.NoError(fc.decodeBody(&data))

	fc.require.Contains(data, "status", "Status should be present")
	fc.require.Contains(data, "version", "version should be present")
	fc.require.Equal("success", data["status"], "Status should be 'success'")
	return nil
}
