package steps

import (
	"encoding/json"
	"time"
)

type changeData struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

func (fc *FeatureContext) iAmConnectedToTheLedgerChangeFeed() error {
	conn, err := fc.apiDriver.DialLedgerFeed(fc.owner)
	if err != nil {
		return err
	}
	fc.wsConn = conn
	return nil
}

// theChangeFeedShouldDeliverAnEventForTheRecord expects the next message on
// the feed to describe the last record this owner created.
func (fc *FeatureContext) theChangeFeedShouldDeliverAnEventForTheRecord(event string) error {
	fc.require.NotNil(fc.wsConn, "not connected to the change feed")
	fc.require.NoError(fc.wsConn.SetReadDeadline(time.Now().Add(3 * time.Second)))

	_, message, err := fc.wsConn.ReadMessage()
	fc.require.NoError(err)

	var change changeData
	fc.require.NoError(json.Unmarshal(message, &change))
	fc.require.Equal(event, change.Type)
	fc.require.Equal(fc.recordID, change.ID)
	return nil
}

func (fc *FeatureContext) cleanupWebSocket() {
	if fc.wsConn != nil {
		fc.wsConn.Close()
		fc.wsConn = nil
	}
}
