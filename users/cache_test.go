package users_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	"github.com/carelink/vitals/config"
	"github.com/carelink/vitals/users"
	usersTest "github.com/carelink/vitals/users/test"
)

var _ = Describe("Caching Directory", func() {
	var ctrl *gomock.Controller
	var delegate *usersTest.MockDirectory
	var user users.User

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		delegate = usersTest.NewMockDirectory(ctrl)
		user = usersTest.RandomUser()
		id := primitive.NewObjectID()
		user.Id = &id
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("resolves the user from the delegate only once", func() {
		directory, err := users.NewCachingDirectory(10, time.Minute, delegate)
		Expect(err).ToNot(HaveOccurred())

		delegate.EXPECT().
			Resolve(gomock.Any(), gomock.Eq(user.UserId)).
			Return(&user, nil).
			Times(1)

		for i := 0; i < 3; i++ {
			result, err := directory.Resolve(context.Background(), user.UserId)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Id).To(Equal(user.Id))
		}
	})

	It("does not cache failed resolutions", func() {
		directory, err := users.NewCachingDirectory(10, time.Minute, delegate)
		Expect(err).ToNot(HaveOccurred())

		delegate.EXPECT().
			Resolve(gomock.Any(), gomock.Eq(user.UserId)).
			Return(nil, users.ErrNotFound).
			Times(2)

		for i := 0; i < 2; i++ {
			result, err := directory.Resolve(context.Background(), user.UserId)
			Expect(err).To(MatchError(users.ErrNotFound))
			Expect(result).To(BeNil())
		}
	})

	It("resolves the user again after the entry expires", func() {
		directory, err := users.NewCachingDirectory(10, time.Nanosecond, delegate)
		Expect(err).ToNot(HaveOccurred())

		delegate.EXPECT().
			Resolve(gomock.Any(), gomock.Eq(user.UserId)).
			Return(&user, nil).
			Times(2)

		_, err = directory.Resolve(context.Background(), user.UserId)
		Expect(err).ToNot(HaveOccurred())
		time.Sleep(time.Millisecond)
		_, err = directory.Resolve(context.Background(), user.UserId)
		Expect(err).ToNot(HaveOccurred())
	})

	It("returns the repository directly when caching is disabled", func() {
		repo := usersTest.NewMockRepository(ctrl)
		directory, err := users.NewDirectory(&config.Config{UserCacheSize: 0}, repo)
		Expect(err).ToNot(HaveOccurred())
		Expect(directory).To(BeIdenticalTo(repo))
	})
})
