package avro_test

import (
	"encoding/binary"
	"errors"
	"finance-tracker/internal/shared_kernel/avro"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type fakeSchemaRegistry struct {
	mu        sync.Mutex
	subjects  map[string]int
	schemas   map[int]string
	registers int
}

func newFakeSchemaRegistry() *fakeSchemaRegistry {
	return &fakeSchemaRegistry{subjects: map[string]int{}, schemas: map[int]string{}}
}

func (r *fakeSchemaRegistry) LatestSchemaID(subject string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.subjects[subject]
	if !ok {
		return 0, errors.New("subject not found")
	}
	return id, nil
}

func (r *fakeSchemaRegistry) RegisterSchema(subject string, schema string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.registers++
	id := len(r.schemas) + 1
	r.subjects[subject] = id
	r.schemas[id] = schema
	return id, nil
}

func (r *fakeSchemaRegistry) SchemaByID(schemaID int) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	schema, ok := r.schemas[schemaID]
	if !ok {
		return "", errors.New("schema not found")
	}
	return schema, nil
}

var _ = Describe("ConfluentAvroCodec", func() {
	var (
		registry *fakeSchemaRegistry
		codec    *avro.ConfluentAvroCodec
	)

	BeforeEach(func() {
		registry = newFakeSchemaRegistry()

		var err error
		codec, err = avro.NewConfluentAvroCodec(&avro.AvroLedgerRecord{}, registry)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should frame the payload with the magic byte and schema id", func() {
		data, err := codec.Encode(&avro.AvroLedgerRecord{ID: "r-1", Operation: avro.OperationDelete})
		Expect(err).NotTo(HaveOccurred())

		Expect(data[0]).To(Equal(byte(0)))
		Expect(binary.BigEndian.Uint32(data[1:5])).To(Equal(uint32(registry.subjects["ledger_records-value"])))
	})

	It("should register the schema once", func() {
		for range 3 {
			_, err := codec.Encode(&avro.AvroLedgerRecord{ID: "r-1"})
			Expect(err).NotTo(HaveOccurred())
		}
		Expect(registry.registers).To(Equal(1))
	})

	It("should round-trip a record with optional fields", func() {
		category := "Transporte"
		message := &avro.AvroLedgerRecord{
			ID: "r-1", OwnerID: "owner-1", Context: "expense", Amount: "99.90",
			Description: "taxi", Category: &category, OccurredOn: "2024-02-29",
			Attributes: `{}`, Operation: avro.OperationUpsert,
			UpdatedAt: time.Date(2024, 2, 29, 8, 0, 0, 0, time.UTC),
		}

		data, err := codec.Encode(message)
		Expect(err).NotTo(HaveOccurred())

		decoded, err := codec.Decode(data)
		Expect(err).NotTo(HaveOccurred())
		Expect(decoded).To(Equal(message))
	})

	It("should round-trip periods without dates", func() {
		periods, err := avro.NewConfluentAvroCodec(&avro.AvroBudgetPeriod{}, registry)
		Expect(err).NotTo(HaveOccurred())

		message := &avro.AvroBudgetPeriod{
			ID: "b-1", OwnerID: "owner-1", Name: "Anual", PeriodType: "yearly",
			Operation: avro.OperationUpsert, UpdatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		}
		data, err := periods.Encode(message)
		Expect(err).NotTo(HaveOccurred())

		decoded, err := periods.Decode(data)
		Expect(err).NotTo(HaveOccurred())
		Expect(decoded).To(Equal(message))
	})

	It("should reject frames without the magic byte", func() {
		_, err := codec.Decode([]byte{1, 0, 0, 0, 1, 2})
		Expect(err).To(MatchError(ContainSubstring("magic byte")))

		_, err = codec.Decode([]byte{0, 1})
		Expect(err).To(MatchError(ContainSubstring("too short")))
	})

	It("should reject unknown message types", func() {
		_, err := codec.Encode(struct{}{})
		Expect(err).To(HaveOccurred())
	})
})
