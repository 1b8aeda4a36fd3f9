package test

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carelink/vitals/store"
	"github.com/carelink/vitals/test"
)

const (
	mongoTestAddresses = "127.0.0.1:27017"
	mongoTimeout       = time.Second * 5
)

var database *mongo.Database

// Addresses returns the hosts of the test mongo deployment
func Addresses() string {
	if addresses, ok := os.LookupEnv("VITALS_TEST_STORE_ADDRESSES"); ok && addresses != "" {
		return addresses
	}
	return mongoTestAddresses
}

func SetupDatabase() {
	cfg := &store.Config{Hosts: Addresses()}
	host, err := cfg.GetConnectionString()
	Expect(err).ToNot(HaveOccurred())

	client, err := store.NewClient(host)
	Expect(err).ToNot(HaveOccurred())

	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()
	err = client.Ping(ctx, nil)
	Expect(err).ToNot(HaveOccurred())

	databaseName := fmt.Sprintf("vitals_test_%s_%d", test.Faker.Lorem().Word(), ginkgo.GinkgoParallelProcess())
	database = client.Database(databaseName)
}

func TeardownDatabase() {
	Expect(database).ToNot(BeNil())
	err := database.Drop(context.Background())
	Expect(err).ToNot(HaveOccurred())

	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()
	Expect(database.Client().Disconnect(ctx)).ToNot(HaveOccurred())
	database = nil
}

func GetTestDatabase() *mongo.Database {
	Expect(database).ToNot(BeNil())
	return database
}
