package rag

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/finnova/finnova/internal/knowledge"
)

// SourceTypeCorpus marks documents that belong to the built-in corpus.
const SourceTypeCorpus = "corpus"

// corpus is the built-in personal-finance knowledge base. It is split into
// ~300-byte chunks with 50 bytes of overlap before indexing.
const corpus = `Personal income tax in Thailand is progressive: successive slices of net income are taxed at increasing rates. The first 150,000 baht of net income is tax free. The next slice up to 300,000 baht is taxed at 5 percent, up to 500,000 at 10 percent, up to 750,000 at 15 percent, up to 1,000,000 at 20 percent, up to 2,000,000 at 25 percent, up to 5,000,000 at 30 percent, and anything above that at 35 percent.

Net income is what remains of your annual income after deductions. Salaried employees may deduct flat-rate expenses of 50 percent of income, capped at 100,000 baht per year, plus a personal allowance of 60,000 baht. Other common allowances include spouse and child allowances, social security contributions, and life insurance premiums.

A budget is a plan for your income. A common starting point is the 50/30/20 rule: 50 percent of take-home pay for needs such as rent, food, and transport; 30 percent for wants; and 20 percent for savings and debt repayment. The exact split matters less than tracking spending honestly and reviewing the plan monthly.

An emergency fund is cash set aside for unexpected expenses such as job loss, medical bills, or urgent repairs. A common target is three to six months of essential living costs, kept in an account you can access quickly, separate from daily spending money. Build it before investing in anything volatile.

Paying off debt: list every debt with its balance and interest rate. The avalanche method pays the highest interest rate first and minimizes total interest. The snowball method pays the smallest balance first and builds momentum. Either works; the key is to stop adding new high-interest debt, especially on credit cards.

Mutual funds pool money from many investors to buy a diversified basket of assets. Index funds track a market index and usually charge lower fees than actively managed funds. Fees compound against you over time, so compare the total expense ratio before buying. Past performance does not guarantee future returns.

Retirement saving benefits from starting early because returns compound. Tax-advantaged vehicles such as retirement mutual funds and provident funds reduce taxable income in the year of contribution, subject to annual caps. Money withdrawn before the qualifying age may forfeit the tax benefit and incur penalties.

Savings accounts and fixed deposits preserve capital but usually earn less than inflation. They suit emergency funds and short-term goals. For goals more than five years away, a diversified portfolio of equities and bonds has historically outpaced inflation, at the cost of short-term swings in value.

Financial statements for a household mirror those of a business. A net worth statement lists what you own minus what you owe. A cash flow statement tracks income against spending over a period. Reviewing both quarterly shows whether your plans are actually moving you forward.

Insurance transfers risks you cannot afford to carry yourself. Health and disability coverage protect your income; life insurance matters mainly when others depend on that income. Insure large, unaffordable losses first, and avoid mixing expensive investment riders into basic protection policies.`

// Index splits the built-in corpus and indexes every chunk into the store
// with stable IDs (corpus:0001, corpus:0002, ...). Called once during
// application startup; re-running replaces the same IDs rather than
// duplicating documents.
//
// Returns the number of chunks indexed.
func Index(ctx context.Context, store *knowledge.Store, logger *slog.Logger) (int, error) {
	if logger == nil {
		logger = slog.Default()
	}

	chunks := knowledge.SplitText(corpus, knowledge.DefaultChunkSize, knowledge.DefaultChunkOverlap)

	for i, chunk := range chunks {
		doc := knowledge.Document{
			ID:      fmt.Sprintf("corpus:%04d", i+1),
			Content: chunk,
			Metadata: map[string]string{
				"source_type": SourceTypeCorpus,
			},
		}
		if err := store.Add(ctx, doc); err != nil {
			return i, fmt.Errorf("indexing corpus chunk %d: %w", i+1, err)
		}
	}

	logger.Debug("corpus indexed", "chunks", len(chunks))
	return len(chunks), nil
}
