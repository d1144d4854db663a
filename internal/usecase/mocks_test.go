package usecase

import (
	"context"

	"freelance-desk/internal/repository"
)

type mockUserRepo struct {
	users map[int64]repository.User
	ids   []int64
	err   error
}

func (m mockUserRepo) FindByID(_ context.Context, id int64) (repository.User, error) {
	if m.err != nil {
		return repository.User{}, m.err
	}
	u, ok := m.users[id]
	if !ok {
		return repository.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (m mockUserRepo) ListIDs(context.Context) ([]int64, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.ids, nil
}

func (m mockUserRepo) ListRecent(context.Context, int) ([]repository.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]repository.User, 0, len(m.ids))
	for _, id := range m.ids {
		out = append(out, m.users[id])
	}
	return out, nil
}

func (m mockUserRepo) Count(context.Context) (int64, error) {
	return int64(len(m.users)), m.err
}

type mockProjectRepo struct {
	projects []repository.Project
	err      error
}

func (m mockProjectRepo) FindByID(_ context.Context, id int64) (repository.Project, error) {
	if m.err != nil {
		return repository.Project{}, m.err
	}
	for _, p := range m.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return repository.Project{}, repository.ErrProjectNotFound
}

func (m mockProjectRepo) List(context.Context) ([]repository.Project, error) {
	return m.projects, m.err
}

func (m mockProjectRepo) ListRecent(context.Context, int) ([]repository.Project, error) {
	return m.projects, m.err
}

func (m mockProjectRepo) Count(context.Context) (int64, error) {
	return int64(len(m.projects)), m.err
}

type mockProposalRepo struct {
	proposals []repository.Proposal
	err       error
}

func (m mockProposalRepo) FindLatest(_ context.Context, projectID, clientID int64) (repository.Proposal, error) {
	if m.err != nil {
		return repository.Proposal{}, m.err
	}
	for _, p := range m.proposals {
		if p.ProjectID == projectID && p.ClientID == clientID {
			return p, nil
		}
	}
	return repository.Proposal{}, repository.ErrProposalNotFound
}

func (m mockProposalRepo) ListRecent(context.Context, int) ([]repository.ProposalListRow, error) {
	return nil, m.err
}

func (m mockProposalRepo) ListByProject(context.Context, int64) ([]repository.ProposalListRow, error) {
	return nil, m.err
}

func (m mockProposalRepo) Count(context.Context) (int64, error) {
	return int64(len(m.proposals)), m.err
}

type mockMatchRepo struct {
	upserts *[]repository.MatchUpsert
	err     error
}

func (m mockMatchRepo) Upsert(_ context.Context, u repository.MatchUpsert) error {
	if m.err != nil {
		return m.err
	}
	if m.upserts != nil {
		*m.upserts = append(*m.upserts, u)
	}
	return nil
}

type mockNegotiationRepo struct {
	inserts *[]repository.NegotiationInsert
	err     error
}

func (m mockNegotiationRepo) Insert(_ context.Context, n repository.NegotiationInsert) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	if m.inserts != nil {
		*m.inserts = append(*m.inserts, n)
	}
	return 1, nil
}

type mockCommunicationRepo struct {
	inserts *[]repository.CommunicationInsert
	err     error
}

func (m mockCommunicationRepo) Insert(_ context.Context, c repository.CommunicationInsert) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	if m.inserts != nil {
		*m.inserts = append(*m.inserts, c)
	}
	return 7, nil
}

type mockDocumentRepo struct {
	inserts *[]repository.DocumentInsert
	err     error
}

func (m mockDocumentRepo) Insert(_ context.Context, d repository.DocumentInsert) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	if m.inserts != nil {
		*m.inserts = append(*m.inserts, d)
	}
	return 9, nil
}

func ptrInt64(v int64) *int64    { return &v }
func ptrString(v string) *string { return &v }
