package test_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	l10n "github.com/freecad/homepage-l10n"
	"github.com/freecad/homepage-l10n/test"
	mock_l10n "github.com/freecad/homepage-l10n/test/mock"
	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
)

var _ = Describe("Translation update", func() {
	var (
		ctrl     *gomock.Controller
		fetcher  *mock_l10n.MockFetcher
		compiler *mock_l10n.MockCompiler
		cfg      l10n.Config
		opts     []l10n.Option
		flag     []byte
		tmp      string
	)

	BeforeEach(func() {
		var err error
		ctrl = gomock.NewController(GinkgoT())
		fetcher = mock_l10n.NewMockFetcher(ctrl)
		compiler = mock_l10n.NewMockCompiler(ctrl)

		tmp, err = os.MkdirTemp("", "homepage-l10n-suite-")
		Expect(err).NotTo(HaveOccurred())

		build := filepath.Join(tmp, "build")
		Expect(test.WriteBuild(build, "homepage", "fr", "en", "pt-BR", "pt-PT")).To(Succeed())

		cfg = l10n.DefaultConfig()
		cfg.Directory = build
		cfg.LangDir = filepath.Join(tmp, "lang")
		cfg.Output = filepath.Join(tmp, "translation.php")
		cfg.FlagURL = "http://flags.test/%s.png"

		flag, err = test.FlagPNG()
		Expect(err).NotTo(HaveOccurred())

		logger := logrus.New()
		logger.Out = io.Discard
		opts = []l10n.Option{
			l10n.WithFetcher(fetcher),
			l10n.WithCompiler(compiler),
			l10n.WithLogger(logger),
			l10n.WithProgress(io.Discard),
		}
	})

	AfterEach(func() {
		ctrl.Finish()
		_ = os.RemoveAll(tmp)
	})

	flagBody := func() io.ReadCloser {
		return io.NopCloser(bytes.NewReader(flag))
	}

	It("should install the requested languages and skip unknown ones", func() {
		cfg.Languages = l10n.LanguageList{"fr", "xx"}
		compiler.EXPECT().Compile(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)
		fetcher.EXPECT().Get(gomock.Any(), "http://flags.test/fr.png").Return(flagBody(), int64(len(flag)), nil)

		report, err := l10n.Run(context.Background(), cfg, opts...)
		Expect(err).NotTo(HaveOccurred())
		Expect(report.Processed).To(Equal([]l10n.LangCode{"fr"}))
		Expect(report.Err()).To(MatchError(ContainSubstring("language path for xx not found")))

		php, err := os.ReadFile(cfg.Output)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(php)).To(ContainSubstring("'en' => 'en_US',"))
		Expect(string(php)).To(ContainSubstring("'fr' => 'fr_FR',"))
		Expect(string(php)).NotTo(ContainSubstring("'xx'"))
		Expect(filepath.Join(cfg.LangDir, "fr", "LC_MESSAGES", "homepage.po")).To(BeAnExistingFile())
		Expect(filepath.Join(cfg.LangDir, "xx")).NotTo(BeADirectory())
	})

	It("should never install the base language", func() {
		cfg.Languages = l10n.LanguageList{"en"}

		report, err := l10n.Run(context.Background(), cfg, opts...)
		Expect(err).NotTo(HaveOccurred())
		Expect(report.Processed).To(BeEmpty())
		Expect(filepath.Join(cfg.LangDir, "en")).NotTo(BeADirectory())
		Expect(cfg.Output).To(BeAnExistingFile())
	})

	It("should not fetch flags already present", func() {
		cfg.Languages = l10n.LanguageList{"fr"}
		Expect(os.MkdirAll(filepath.Join(cfg.LangDir, "fr"), 0o755)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(cfg.LangDir, "fr", "flag.jpg"), []byte("jpg"), 0o644)).To(Succeed())
		compiler.EXPECT().Compile(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		fetcher.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)

		_, err := l10n.Run(context.Background(), cfg, opts...)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should key both portuguese variants on their language", func() {
		cfg.Languages = l10n.LanguageList{"pt-BR", "pt-PT"}
		compiler.EXPECT().Compile(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
		fetcher.EXPECT().Get(gomock.Any(), "http://flags.test/pt.png").
			DoAndReturn(func(context.Context, string) (io.ReadCloser, int64, error) {
				return flagBody(), int64(len(flag)), nil
			}).Times(2)

		report, err := l10n.Run(context.Background(), cfg, opts...)
		Expect(err).NotTo(HaveOccurred())
		Expect(report.Processed).To(Equal([]l10n.LangCode{"pt_BR", "pt_PT"}))

		php, err := os.ReadFile(cfg.Output)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(php)).To(ContainSubstring("'pt' => 'pt_BR',"))
		Expect(string(php)).To(ContainSubstring("'pt' => 'pt_PT',"))
		Expect(string(php)).To(ContainSubstring("?lang=pt_PT"))
	})

	It("should abort on a missing flag unless told to skip", func() {
		cfg.Languages = l10n.LanguageList{"fr", "pt-BR"}
		compiler.EXPECT().Compile(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		fetcher.EXPECT().Get(gomock.Any(), "http://flags.test/fr.png").Return(nil, int64(0), errors.New("unexpected status 404 Not Found"))

		report, err := l10n.Run(context.Background(), cfg, opts...)
		var lerr l10n.Error
		Expect(errors.As(err, &lerr)).To(BeTrue())
		Expect(lerr.Fatal()).To(BeTrue())
		Expect(lerr.Lang()).To(Equal("fr"))
		Expect(err.Error()).To(ContainSubstring("please save it manually"))
		Expect(report.Processed).To(BeEmpty())
		Expect(cfg.Output).NotTo(BeAnExistingFile())
	})

	It("should carry on after a missing flag with flag_failure skip", func() {
		cfg.Languages = l10n.LanguageList{"fr", "pt-BR"}
		cfg.FlagFailure = l10n.FlagFailureSkip
		compiler.EXPECT().Compile(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
		fetcher.EXPECT().Get(gomock.Any(), "http://flags.test/fr.png").Return(nil, int64(0), errors.New("unexpected status 404 Not Found"))
		fetcher.EXPECT().Get(gomock.Any(), "http://flags.test/pt.png").Return(flagBody(), int64(len(flag)), nil)

		report, err := l10n.Run(context.Background(), cfg, opts...)
		Expect(err).NotTo(HaveOccurred())
		Expect(report.Processed).To(Equal([]l10n.LangCode{"pt_BR"}))
		Expect(report.Errors.Errors).To(HaveLen(1))
	})
})
