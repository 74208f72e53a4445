package client

import (
	"context"
	"testing"

	"github.com/fivetwenty-io/outseta-client/pkg/outseta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthClient_GetToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		password string
		wantErr  bool
	}{
		{name: "exchanges credentials", username: "jane@example.com", password: "pw"},
		{name: "blank username", username: " ", password: "pw", wantErr: true},
		{name: "empty password", username: "jane@example.com", password: "", wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			client, maker := newTestClient(`{"access_token":"tok-1","token_type":"bearer","expires_in":86400}`)

			token, err := client.Auth().GetToken(context.Background(), testCase.username, testCase.password)

			if testCase.wantErr {
				require.Error(t, err)
				assert.True(t, outseta.IsInvalidArgument(err))
				assert.Nil(t, token)
				assert.Empty(t, maker.calls())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "tok-1", token.AccessToken)
			assert.Equal(t, int64(86400), token.ExpiresIn)

			call := maker.only(t)
			assert.Equal(t, "POST", call.Method)
			assert.Equal(t, testBaseURL+"/tokens", call.URL)
			assert.JSONEq(t, `{"username":"jane@example.com","password":"pw"}`, call.Body)
		})
	}
}

func TestMarketingClient(t *testing.T) {
	t.Parallel()

	RunGetTests(t, []TestGetOperation{
		{Name: "get list", ID: "list-1", ExpectedPath: "/email/lists/list-1", Response: `{"Uid":"list-1","Name":"News"}`},
		{Name: "blank list id", ID: "", WantErr: true, ErrKind: outseta.KindInvalidArgument},
	}, func(c *Client) func(context.Context, string) (*outseta.EmailList, error) {
		return c.Marketing().GetList
	})

	RunListTests(t, []TestListOperation{{Name: "lists", ExpectedPath: "/email/lists"}},
		func(c *Client) func(context.Context, *outseta.PageRequest) (*outseta.ItemPage[outseta.EmailList], error) {
			return c.Marketing().Lists
		})

	RunListTests(t, []TestListOperation{{Name: "subscriptions", ExpectedPath: "/email/lists/list-1/subscriptions"}},
		func(c *Client) func(context.Context, *outseta.PageRequest) (*outseta.ItemPage[outseta.MarketingSubscription], error) {
			return func(ctx context.Context, page *outseta.PageRequest) (*outseta.ItemPage[outseta.MarketingSubscription], error) {
				return c.Marketing().Subscriptions(ctx, "list-1", page)
			}
		})

	t.Run("subscribe", func(t *testing.T) {
		t.Parallel()

		client, maker := newTestClient(`{"Uid":"ms-1"}`)

		subscription, err := client.Marketing().Subscribe(context.Background(), "list-1", &outseta.MarketingSubscription{
			Person: &outseta.Person{Email: "jane@example.com"},
		})
		require.NoError(t, err)
		assert.Equal(t, "ms-1", subscription.UID)

		call := maker.only(t)
		assert.Equal(t, "POST", call.Method)
		assert.Equal(t, testBaseURL+"/email/lists/list-1/subscriptions", call.URL)
		assert.Contains(t, call.Body, `"jane@example.com"`)
	})

	t.Run("unsubscribe", func(t *testing.T) {
		t.Parallel()

		client, maker := newTestClient("")

		err := client.Marketing().Unsubscribe(context.Background(), "list-1", "ms-1")
		require.NoError(t, err)

		call := maker.only(t)
		assert.Equal(t, "DELETE", call.Method)
		assert.Equal(t, testBaseURL+"/email/lists/list-1/subscriptions/ms-1", call.URL)
	})

	t.Run("rejects blank ids", func(t *testing.T) {
		t.Parallel()

		client, maker := newTestClient("")

		_, err := client.Marketing().Subscriptions(context.Background(), "", nil)
		assert.True(t, outseta.IsInvalidArgument(err))

		_, err = client.Marketing().Subscribe(context.Background(), "list-1", nil)
		assert.True(t, outseta.IsInvalidArgument(err))

		err = client.Marketing().Unsubscribe(context.Background(), "list-1", "")
		assert.True(t, outseta.IsInvalidArgument(err))

		assert.Empty(t, maker.calls())
	})
}

func TestProfileClient(t *testing.T) {
	t.Parallel()

	newProfile := func(response string) (*ProfileClient, *fakeRequestMaker) {
		maker := &fakeRequestMaker{response: response}
		config := testConfiguration(maker, outseta.NewJSONParser())
		config.Headers = map[string]string{"Authorization": "bearer tok-1"}

		return NewProfile(config), maker
	}

	t.Run("get", func(t *testing.T) {
		t.Parallel()

		profile, maker := newProfile(`{"Uid":"per-1","Email":"jane@example.com"}`)

		person, err := profile.Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", person.Email)

		call := maker.only(t)
		assert.Equal(t, "GET", call.Method)
		assert.Equal(t, testBaseURL+"/profile", call.URL)
		assert.Equal(t, "bearer tok-1", call.Headers["Authorization"])
	})

	t.Run("update", func(t *testing.T) {
		t.Parallel()

		profile, maker := newProfile(`{"Uid":"per-1"}`)

		_, err := profile.Update(context.Background(), &outseta.Person{FirstName: "Jane"})
		require.NoError(t, err)

		call := maker.only(t)
		assert.Equal(t, "PUT", call.Method)
		assert.Equal(t, testBaseURL+"/profile", call.URL)
	})

	t.Run("update password", func(t *testing.T) {
		t.Parallel()

		profile, maker := newProfile("")

		err := profile.UpdatePassword(context.Background(), &outseta.UpdatePasswordRequest{
			ExistingPassword: "old",
			NewPassword:      "new",
		})
		require.NoError(t, err)

		call := maker.only(t)
		assert.Equal(t, testBaseURL+"/profile/password", call.URL)
		assert.JSONEq(t, `{"ExistingPassword":"old","NewPassword":"new"}`, call.Body)
	})

	t.Run("nil requests", func(t *testing.T) {
		t.Parallel()

		profile, maker := newProfile("")

		_, err := profile.Update(context.Background(), nil)
		assert.True(t, outseta.IsInvalidArgument(err))

		err = profile.UpdatePassword(context.Background(), nil)
		assert.True(t, outseta.IsInvalidArgument(err))

		assert.Empty(t, maker.calls())
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestSupportClient(t *testing.T) {
	t.Parallel()

	RunGetTests(t, []TestGetOperation{
		{Name: "get case", ID: "case-1", ExpectedPath: "/support/cases/case-1", Response: `{"Uid":"case-1","Subject":"Help"}`},
		{Name: "blank case id", ID: "", WantErr: true, ErrKind: outseta.KindInvalidArgument},
	}, func(c *Client) func(context.Context, string) (*outseta.Case, error) {
		return c.Support().Get
	})

	RunListTests(t, []TestListOperation{{Name: "cases", ExpectedPath: "/support/cases"}},
		func(c *Client) func(context.Context, *outseta.PageRequest) (*outseta.ItemPage[outseta.Case], error) {
			return c.Support().List
		})

	createTests := []struct {
		name              string
		sendAutoResponder bool
		expectedParams    outseta.Params
	}{
		{name: "with auto responder", sendAutoResponder: true, expectedParams: outseta.Params{"sendAutoResponder": "true"}},
		{name: "without auto responder", sendAutoResponder: false, expectedParams: outseta.Params{"sendAutoResponder": "false"}},
	}

	for _, testCase := range createTests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			client, maker := newTestClient(`{"Uid":"case-1"}`)

			_, err := client.Support().Create(context.Background(), &outseta.Case{Subject: "Help"}, testCase.sendAutoResponder)
			require.NoError(t, err)

			call := maker.only(t)
			assert.Equal(t, "POST", call.Method)
			assert.Equal(t, testBaseURL+"/support/cases", call.URL)
			assert.Equal(t, testCase.expectedParams, call.Params)
		})
	}

	t.Run("client response escapes the comment", func(t *testing.T) {
		t.Parallel()

		client, maker := newTestClient("")

		err := client.Support().AddClientResponse(context.Background(), "case-1", "still broken/help")
		require.NoError(t, err)

		call := maker.only(t)
		assert.Equal(t, "POST", call.Method)
		assert.Equal(t, testBaseURL+"/support/cases/case-1/clientresponse/still%20broken%2Fhelp", call.URL)
		assert.Empty(t, call.Body)
	})

	t.Run("reply", func(t *testing.T) {
		t.Parallel()

		client, maker := newTestClient(`{"Uid":"case-1"}`)

		_, err := client.Support().AddReply(context.Background(), "case-1", &outseta.CaseReply{AgentName: "Sam", Comment: "Fixed"})
		require.NoError(t, err)

		call := maker.only(t)
		assert.Equal(t, testBaseURL+"/support/cases/case-1/replies", call.URL)
		assert.JSONEq(t, `{"AgentName":"Sam","Comment":"Fixed"}`, call.Body)
	})

	t.Run("rejects blank values", func(t *testing.T) {
		t.Parallel()

		client, maker := newTestClient("")

		err := client.Support().AddClientResponse(context.Background(), "case-1", " ")
		assert.True(t, outseta.IsInvalidArgument(err))

		_, err = client.Support().Create(context.Background(), nil, true)
		assert.True(t, outseta.IsInvalidArgument(err))

		_, err = client.Support().AddReply(context.Background(), "", &outseta.CaseReply{})
		assert.True(t, outseta.IsInvalidArgument(err))

		assert.Empty(t, maker.calls())
	})
}
