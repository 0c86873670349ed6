package ledger_test

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	appledger "github.com/govindweb777/erp-sales-backend/internal/application/ledger"
	"github.com/govindweb777/erp-sales-backend/internal/domain"
	"github.com/govindweb777/erp-sales-backend/internal/domain/entity"
	"github.com/govindweb777/erp-sales-backend/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia. El runner simula la
// semántica transaccional con snapshot/rollback: si el callback falla, el
// estado vuelve al punto de partida.

type fakeDocRepo struct {
	docs map[string]*entity.LedgerDocument
}

func newFakeDocRepo() *fakeDocRepo {
	return &fakeDocRepo{docs: map[string]*entity.LedgerDocument{}}
}

func (r *fakeDocRepo) uniqueKey(d *entity.LedgerDocument) string {
	return fmt.Sprintf("%s|%s|%s|%s", d.CompanyID, d.BranchID, d.Type, d.DocumentNo)
}

func (r *fakeDocRepo) Create(doc *entity.LedgerDocument) error {
	key := r.uniqueKey(doc)
	for _, existing := range r.docs {
		if r.uniqueKey(existing) == key {
			return domain.ErrDuplicateDocumentNo
		}
	}
	cp := *doc
	r.docs[doc.ID] = &cp
	return nil
}

func (r *fakeDocRepo) Update(doc *entity.LedgerDocument) error {
	if _, ok := r.docs[doc.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *doc
	r.docs[doc.ID] = &cp
	return nil
}

func (r *fakeDocRepo) GetByID(id string) (*entity.LedgerDocument, error) {
	doc, ok := r.docs[id]
	if !ok {
		return nil, nil
	}
	cp := *doc
	return &cp, nil
}

func (r *fakeDocRepo) List(filter repository.DocumentFilter) ([]*entity.LedgerDocument, int64, error) {
	var matched []*entity.LedgerDocument
	for _, doc := range r.docs {
		if doc.CompanyID != filter.CompanyID || doc.Type != filter.Type || doc.IsDeleted != filter.Deleted {
			continue
		}
		if filter.BranchID != "" && doc.BranchID != filter.BranchID {
			continue
		}
		if filter.IsActive != nil && doc.IsActive != *filter.IsActive {
			continue
		}
		if filter.Search != "" && !strings.Contains(doc.DocumentNo, filter.Search) &&
			!strings.Contains(doc.PartyName, filter.Search) {
			continue
		}
		cp := *doc
		matched = append(matched, &cp)
	}
	total := int64(len(matched))
	if filter.Offset >= len(matched) {
		return nil, total, nil
	}
	end := filter.Offset + filter.Limit
	if filter.Limit <= 0 || end > len(matched) {
		end = len(matched)
	}
	return matched[filter.Offset:end], total, nil
}

func (r *fakeDocRepo) SumTotal(filter repository.DocumentFilter) (decimal.Decimal, error) {
	matched, _, err := r.List(filter)
	if err != nil {
		return decimal.Zero, err
	}
	sum := decimal.Zero
	for _, doc := range matched {
		sum = sum.Add(doc.Total)
	}
	return sum, nil
}

func (r *fakeDocRepo) SumTotalByParty(filter repository.DocumentFilter) ([]repository.PartyTotal, error) {
	matched, _, err := r.List(filter)
	if err != nil {
		return nil, err
	}
	byParty := map[string]decimal.Decimal{}
	for _, doc := range matched {
		byParty[doc.PartyName] = byParty[doc.PartyName].Add(doc.Total)
	}
	totals := make([]repository.PartyTotal, 0, len(byParty))
	for name, total := range byParty {
		totals = append(totals, repository.PartyTotal{PartyName: name, Total: total})
	}
	return totals, nil
}

func (r *fakeDocRepo) HardDelete(id string) error {
	delete(r.docs, id)
	return nil
}

type fakeSeqRepo struct {
	counters map[string]int64
}

func newFakeSeqRepo() *fakeSeqRepo {
	return &fakeSeqRepo{counters: map[string]int64{}}
}

func seqKey(companyID, branchID, key string) string {
	return companyID + "|" + branchID + "|" + key
}

func (r *fakeSeqRepo) Next(companyID, branchID, key string) (int64, error) {
	k := seqKey(companyID, branchID, key)
	r.counters[k]++
	return r.counters[k], nil
}

func (r *fakeSeqRepo) Current(companyID, branchID, key string) (int64, error) {
	return r.counters[seqKey(companyID, branchID, key)], nil
}

type fakeItemRepo struct {
	items map[string]*entity.Item
	// afterGet permite simular un escritor concurrente entre la lectura del
	// ítem y su escritura condicional.
	afterGet func(stored *entity.Item)
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: map[string]*entity.Item{}}
}

func (r *fakeItemRepo) Create(item *entity.Item) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *item
	if r.afterGet != nil {
		r.afterGet(item)
	}
	return &cp, nil
}

func (r *fakeItemRepo) Update(item *entity.Item) error {
	if _, ok := r.items[item.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) UpdateState(item *entity.Item, expectedVersion int64) error {
	stored, ok := r.items[item.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if stored.Version != expectedVersion {
		return domain.ErrConcurrency
	}
	cp := *item
	cp.Version = expectedVersion + 1
	r.items[item.ID] = &cp
	item.Version = cp.Version
	return nil
}

func (r *fakeItemRepo) List(filter repository.ItemFilter) ([]*entity.Item, int64, error) {
	var matched []*entity.Item
	for _, item := range r.items {
		if item.CompanyID != filter.CompanyID || item.IsDeleted != filter.Deleted {
			continue
		}
		if filter.BranchID != "" && item.BranchID != filter.BranchID {
			continue
		}
		cp := *item
		matched = append(matched, &cp)
	}
	return matched, int64(len(matched)), nil
}

func (r *fakeItemRepo) SoftDelete(id string) error {
	if item, ok := r.items[id]; ok {
		item.IsDeleted = true
	}
	return nil
}

func (r *fakeItemRepo) Restore(id string) error {
	if item, ok := r.items[id]; ok {
		item.IsDeleted = false
	}
	return nil
}

// fakeTxRunner pasa los mismos fakes al callback y restaura el estado previo
// si el callback falla (rollback).
type fakeTxRunner struct {
	docs  *fakeDocRepo
	seqs  *fakeSeqRepo
	items *fakeItemRepo
}

func newFakeTxRunner() *fakeTxRunner {
	return &fakeTxRunner{
		docs:  newFakeDocRepo(),
		seqs:  newFakeSeqRepo(),
		items: newFakeItemRepo(),
	}
}

func (r *fakeTxRunner) RunLedger(_ context.Context, fn func(
	docRepo repository.DocumentRepository,
	seqRepo repository.SequenceRepository,
	itemRepo repository.ItemRepository,
) error) error {
	docsSnap := make(map[string]*entity.LedgerDocument, len(r.docs.docs))
	for k, v := range r.docs.docs {
		cp := *v
		docsSnap[k] = &cp
	}
	itemsSnap := make(map[string]*entity.Item, len(r.items.items))
	for k, v := range r.items.items {
		cp := *v
		itemsSnap[k] = &cp
	}

	// Los contadores de secuencia no se restauran: igual que en la
	// implementación real, un rollback quema el número consumido.
	if err := fn(r.docs, r.seqs, r.items); err != nil {
		r.docs.docs = docsSnap
		r.items.items = itemsSnap
		return err
	}
	return nil
}

type fakeSink struct {
	mu     sync.Mutex
	events []appledger.Event
	err    error
}

func (s *fakeSink) Publish(_ context.Context, ev appledger.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, ev)
	return nil
}

func (s *fakeSink) types() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.events))
	for _, ev := range s.events {
		out = append(out, ev.Type)
	}
	return out
}
